package sshconf

import (
	"fmt"
	"strings"
)

const indent = "    "

// Render serializes a File back to config text. Recognized directives are
// written in canonical order (HostName, User, Port, IdentityFile) followed
// by the preserved extras and comments; stanzas are separated by one blank
// line. Comment position within a stanza is not kept, only the text.
func Render(f File) string {
	var b strings.Builder
	for _, line := range f.Prelude {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(f.Prelude) > 0 && len(f.Entries) > 0 {
		b.WriteString("\n")
	}
	for i, e := range f.Entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Host %s\n", e.Host)
		if e.Hostname != "" {
			fmt.Fprintf(&b, "%sHostName %s\n", indent, e.Hostname)
		}
		if e.User != "" {
			fmt.Fprintf(&b, "%sUser %s\n", indent, e.User)
		}
		if e.Port != 0 {
			fmt.Fprintf(&b, "%sPort %d\n", indent, e.Port)
		}
		if e.IdentityFile != "" {
			fmt.Fprintf(&b, "%sIdentityFile %s\n", indent, e.IdentityFile)
		}
		for _, d := range e.Extra {
			fmt.Fprintf(&b, "%s%s %s\n", indent, d.Key, d.Value)
		}
		for _, c := range e.Comments {
			fmt.Fprintf(&b, "%s%s\n", indent, c)
		}
	}
	return b.String()
}
