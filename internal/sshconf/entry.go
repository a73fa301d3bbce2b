// Package sshconf reads and writes the flat subset of the OpenSSH client
// config grammar this tool manages: Host headers followed by Key Value
// directive lines. Match blocks and Include are not supported.
package sshconf

// Directive is a single Key Value line inside a stanza, with the key kept
// in its original spelling so rewrites lose nothing.
type Directive struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Entry is one Host stanza. Port 0 means the directive is absent
// (OpenSSH then defaults to 22); the file never gains a Port line the
// user did not write. Comments holds the comment lines seen between the
// stanza header and the next one, so a rewrite drops no text.
type Entry struct {
	Host         string      `json:"host" yaml:"host"`
	Hostname     string      `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	User         string      `json:"user,omitempty" yaml:"user,omitempty"`
	Port         int         `json:"port,omitempty" yaml:"port,omitempty"`
	IdentityFile string      `json:"identity_file,omitempty" yaml:"identity_file,omitempty"`
	Extra        []Directive `json:"extra,omitempty" yaml:"extra,omitempty"`
	Comments     []string    `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// File is a parsed config file. Prelude keeps comment lines that appear
// before the first stanza; stanza order is preserved across rewrites.
type File struct {
	Prelude []string
	Entries []Entry
}

// Find returns the index of the stanza whose Host pattern matches host
// exactly. Patterns are case-sensitive, as OpenSSH treats them.
func (f File) Find(host string) (int, bool) {
	for i, e := range f.Entries {
		if e.Host == host {
			return i, true
		}
	}
	return 0, false
}
