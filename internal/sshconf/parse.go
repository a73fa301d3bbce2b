package sshconf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mkrenz/sshman/internal/errors"
)

const (
	MinPort = 1
	MaxPort = 65535
)

// Parse reads config text into a File. A directive before any Host header,
// a Host header without a pattern, a second stanza with the same pattern,
// and a Match block all fail with SSHMAN_CONFIG_PARSE. Within one stanza a
// repeated recognized directive keeps the first value (OpenSSH convention)
// and the repeat is preserved as an extra directive. Comment lines before
// the first stanza go to Prelude; later ones attach to the enclosing
// stanza so no text is lost on rewrite.
func Parse(r io.Reader) (File, *errors.OpError) {
	var f File
	var cur *Entry
	seen := map[string]int{}

	flush := func() {
		if cur != nil {
			f.Entries = append(f.Entries, *cur)
			cur = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if cur != nil {
				cur.Comments = append(cur.Comments, line)
			} else {
				f.Prelude = append(f.Prelude, line)
			}
			continue
		}

		key, value := splitDirective(line)
		lower := strings.ToLower(key)

		switch lower {
		case "host":
			if value == "" {
				return File{}, parseErr("host header has no pattern", lineNo)
			}
			if prev, dup := seen[value]; dup {
				return File{}, errors.New(errors.CodeConfigParse, "duplicate host stanza", map[string]any{
					"host": value, "line": lineNo, "first_line": prev,
				})
			}
			seen[value] = lineNo
			flush()
			cur = &Entry{Host: value}
		case "match":
			return File{}, parseErr("match blocks are not supported", lineNo)
		default:
			if cur == nil {
				return File{}, parseErr("directive outside a host stanza", lineNo)
			}
			if value == "" {
				return File{}, parseErr("directive has no value", lineNo)
			}
			if oe := applyDirective(cur, key, lower, value, lineNo); oe != nil {
				return File{}, oe
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return File{}, errors.Wrap(errors.CodeIO, "failed to read config", nil, err)
	}
	flush()
	return f, nil
}

func applyDirective(e *Entry, key, lower, value string, lineNo int) *errors.OpError {
	switch lower {
	case "hostname":
		if e.Hostname == "" {
			e.Hostname = value
			return nil
		}
	case "user":
		if e.User == "" {
			e.User = value
			return nil
		}
	case "port":
		if e.Port == 0 {
			port, err := strconv.Atoi(value)
			if err != nil || port < MinPort || port > MaxPort {
				return errors.New(errors.CodeConfigParse, "invalid port directive", map[string]any{
					"host": e.Host, "value": value, "line": lineNo,
				})
			}
			e.Port = port
			return nil
		}
	case "identityfile":
		if e.IdentityFile == "" {
			e.IdentityFile = value
			return nil
		}
	default:
		e.Extra = append(e.Extra, Directive{Key: key, Value: value})
		return nil
	}
	// Repeated recognized directive: first one wins, keep the repeat verbatim.
	e.Extra = append(e.Extra, Directive{Key: key, Value: value})
	return nil
}

// splitDirective splits "Key Value", "Key=Value" and "Key = Value" forms.
// Surrounding double quotes on the value are stripped.
func splitDirective(line string) (string, string) {
	i := strings.IndexAny(line, " \t=")
	if i < 0 {
		return line, ""
	}
	key := line[:i]
	value := strings.TrimLeft(line[i:], " \t=")
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return key, value
}

func parseErr(msg string, lineNo int) *errors.OpError {
	return errors.New(errors.CodeConfigParse, msg, map[string]any{"line": lineNo})
}
