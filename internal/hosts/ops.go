// Package hosts holds the pure entry operations: every function takes a
// parsed file and returns a new one, leaving persistence to the caller.
package hosts

import (
	"slices"
	"strconv"
	"strings"

	"github.com/mkrenz/sshman/internal/errors"
	"github.com/mkrenz/sshman/internal/sshconf"
)

// Fields editable via the edit operation, in lowercase form.
const (
	FieldHostname     = "hostname"
	FieldUser         = "user"
	FieldPort         = "port"
	FieldIdentityFile = "identityfile"
)

// Add appends a new stanza. The host pattern must not already exist.
func Add(f sshconf.File, entry sshconf.Entry) (sshconf.File, *errors.OpError) {
	if _, ok := f.Find(entry.Host); ok {
		return sshconf.File{}, errors.New(errors.CodeHostDuplicate, "host already exists", map[string]any{"host": entry.Host})
	}
	out := f
	out.Entries = append(slices.Clone(f.Entries), entry)
	return out, nil
}

// List returns all entries in file order.
func List(f sshconf.File) []sshconf.Entry {
	return slices.Clone(f.Entries)
}

// Search returns the entries whose Host or Hostname contains query,
// case-insensitively. An empty query matches everything.
func Search(f sshconf.File, query string) []sshconf.Entry {
	q := strings.ToLower(query)
	var out []sshconf.Entry
	for _, e := range f.Entries {
		if strings.Contains(strings.ToLower(e.Host), q) ||
			strings.Contains(strings.ToLower(e.Hostname), q) {
			out = append(out, e)
		}
	}
	return out
}

// Show returns the entry whose Host matches exactly.
func Show(f sshconf.File, host string) (sshconf.Entry, *errors.OpError) {
	i, ok := f.Find(host)
	if !ok {
		return sshconf.Entry{}, notFound(host)
	}
	return f.Entries[i], nil
}

// Edit replaces one field of an existing entry. Field names are matched
// case-insensitively against hostname, user, port and identityfile.
func Edit(f sshconf.File, host, field, value string) (sshconf.File, *errors.OpError) {
	i, ok := f.Find(host)
	if !ok {
		return sshconf.File{}, notFound(host)
	}

	entry := f.Entries[i]
	entry.Extra = slices.Clone(entry.Extra)
	entry.Comments = slices.Clone(entry.Comments)
	switch strings.ToLower(field) {
	case FieldHostname:
		entry.Hostname = value
	case FieldUser:
		entry.User = value
	case FieldPort:
		port, oe := ParsePort(value)
		if oe != nil {
			return sshconf.File{}, oe
		}
		entry.Port = port
	case FieldIdentityFile:
		entry.IdentityFile = value
	default:
		return sshconf.File{}, errors.New(errors.CodeFieldInvalid, "unknown field", map[string]any{
			"field":  field,
			"fields": []string{FieldHostname, FieldUser, FieldPort, FieldIdentityFile},
		})
	}

	out := f
	out.Entries = slices.Clone(f.Entries)
	out.Entries[i] = entry
	return out, nil
}

// Delete removes the entry whose Host matches exactly; the remainder
// keeps its order.
func Delete(f sshconf.File, host string) (sshconf.File, *errors.OpError) {
	i, ok := f.Find(host)
	if !ok {
		return sshconf.File{}, notFound(host)
	}
	out := f
	out.Entries = slices.Delete(slices.Clone(f.Entries), i, i+1)
	return out, nil
}

// ParsePort validates a port value for add and edit.
func ParsePort(s string) (int, *errors.OpError) {
	port, err := strconv.Atoi(s)
	if err != nil || port < sshconf.MinPort || port > sshconf.MaxPort {
		return 0, errors.New(errors.CodeValueInvalid, "port must be an integer between 1 and 65535", map[string]any{"value": s})
	}
	return port, nil
}

func notFound(host string) *errors.OpError {
	return errors.New(errors.CodeHostNotFound, "host does not exist", map[string]any{"host": host})
}
