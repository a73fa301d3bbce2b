package output

import (
	"fmt"
	"strconv"

	"github.com/mkrenz/sshman/internal/sshconf"
)

const na = "N/A"

// HostRow is the list/search view of one entry.
type HostRow struct {
	Host         string `json:"host" yaml:"host"`
	Hostname     string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	User         string `json:"user,omitempty" yaml:"user,omitempty"`
	Port         int    `json:"port,omitempty" yaml:"port,omitempty"`
	IdentityFile string `json:"identity_file,omitempty" yaml:"identity_file,omitempty"`
}

func NewHostRow(e sshconf.Entry) HostRow {
	return HostRow{
		Host:         e.Host,
		Hostname:     e.Hostname,
		User:         e.User,
		Port:         e.Port,
		IdentityFile: e.IdentityFile,
	}
}

func NewHostRows(entries []sshconf.Entry) []HostRow {
	rows := make([]HostRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, NewHostRow(e))
	}
	return rows
}

// HostList renders list and search results.
type HostList struct {
	ConfigPath string    `json:"config_path,omitempty" yaml:"config_path,omitempty"`
	Hosts      []HostRow `json:"hosts" yaml:"hosts"`

	Title   string `json:"-" yaml:"-"`
	Verbose bool   `json:"-" yaml:"-"`
}

func (l HostList) TableTitle() string { return l.Title }

func (l HostList) TableHeader() []string {
	h := []string{"Host", "Hostname", "User", "Port"}
	if l.Verbose {
		h = append(h, "IdentityFile")
	}
	return h
}

func (l HostList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Hosts))
	for _, r := range l.Hosts {
		row := []string{r.Host, orNA(r.Hostname), orNA(r.User), portOrNA(r.Port)}
		if l.Verbose {
			row = append(row, orNA(r.IdentityFile))
		}
		rows = append(rows, row)
	}
	return rows
}

// HostDetail renders the show view, one field per row, extras included.
type HostDetail struct {
	ConfigPath string        `json:"config_path,omitempty" yaml:"config_path,omitempty"`
	Entry      sshconf.Entry `json:"entry" yaml:"entry"`
}

func (d HostDetail) TableTitle() string {
	return fmt.Sprintf("Details for Host '%s'", d.Entry.Host)
}

func (d HostDetail) TableHeader() []string { return []string{"Field", "Value"} }

func (d HostDetail) TableRows() [][]string {
	rows := [][]string{
		{"Host", d.Entry.Host},
		{"Hostname", orNA(d.Entry.Hostname)},
		{"User", orNA(d.Entry.User)},
		{"Port", portOrNA(d.Entry.Port)},
		{"IdentityFile", orNA(d.Entry.IdentityFile)},
	}
	for _, extra := range d.Entry.Extra {
		rows = append(rows, []string{extra.Key, extra.Value})
	}
	return rows
}

// Result acknowledges a mutating operation in structured formats.
type Result struct {
	Action     string `json:"action" yaml:"action"`
	Host       string `json:"host" yaml:"host"`
	Field      string `json:"field,omitempty" yaml:"field,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Canceled   bool   `json:"canceled,omitempty" yaml:"canceled,omitempty"`
	ConfigPath string `json:"config_path,omitempty" yaml:"config_path,omitempty"`
}

func orNA(s string) string {
	if s == "" {
		return na
	}
	return s
}

func portOrNA(port int) string {
	if port == 0 {
		return na
	}
	return strconv.Itoa(port)
}
