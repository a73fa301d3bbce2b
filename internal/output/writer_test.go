package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mkrenz/sshman/internal/errors"
	"github.com/mkrenz/sshman/internal/sshconf"
)

func sampleList() HostList {
	return HostList{
		Title: "SSH Config Entries",
		Hosts: []HostRow{
			{Host: "myserver", Hostname: "192.168.80.204", User: "root", Port: 22},
			{Host: "backup", Hostname: "backup.example.com", User: "admin", Port: 2222, IdentityFile: "~/.ssh/id_rsa"},
		},
	}
}

func TestWriteOK_JSONEnvelope(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	if err := w.WriteOK(FormatJSON, sampleList()); err != nil {
		t.Fatal(err)
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if !env.OK || env.SchemaVersion != SchemaVersion {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if !strings.Contains(out.String(), `"host":"myserver"`) {
		t.Fatalf("expected host in data, got: %s", out.String())
	}
}

func TestWriteOK_YAMLEnvelope(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	if err := w.WriteOK(FormatYAML, sampleList()); err != nil {
		t.Fatal(err)
	}
	result := out.String()
	if !strings.Contains(result, "ok: true") {
		t.Errorf("YAML should contain 'ok: true', got: %s", result)
	}
	if !strings.Contains(result, "host: myserver") {
		t.Errorf("YAML should contain host, got: %s", result)
	}
}

func TestWriteOK_TableUsesTabularShape(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	if err := w.WriteOK(FormatTable, sampleList()); err != nil {
		t.Fatal(err)
	}
	result := out.String()
	for _, want := range []string{"SSH Config Entries", "Host", "Hostname", "myserver", "192.168.80.204", "2222"} {
		if !strings.Contains(result, want) {
			t.Errorf("table missing %q:\n%s", want, result)
		}
	}
	// non-verbose list has no identity file column
	if strings.Contains(result, "id_rsa") {
		t.Errorf("non-verbose table should not show identity file:\n%s", result)
	}
}

func TestWriteOK_TableVerboseShowsIdentityFile(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	l := sampleList()
	l.Verbose = true
	if err := w.WriteOK(FormatTable, l); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "~/.ssh/id_rsa") {
		t.Errorf("verbose table missing identity file:\n%s", out.String())
	}
}

func TestWriteOK_CSVTabular(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	if err := w.WriteOK(FormatCSV, sampleList()); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "Host" || records[1][0] != "myserver" {
		t.Fatalf("unexpected records: %v", records)
	}
}

func TestWriteOK_TableFallbackIsSorted(t *testing.T) {
	data := struct {
		Gamma string `json:"gamma"`
		Alpha string `json:"alpha"`
		Beta  string `json:"beta"`
	}{"g", "a", "b"}

	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	if err := w.WriteOK(FormatTable, data); err != nil {
		t.Fatal(err)
	}
	first := out.String()

	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), first)
	}
	for i, prefix := range []string{"alpha", "beta", "gamma"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Fatalf("expected key order alpha,beta,gamma, got:\n%s", first)
		}
	}

	out.Reset()
	if err := w.WriteOK(FormatTable, data); err != nil {
		t.Fatal(err)
	}
	if out.String() != first {
		t.Fatalf("output not deterministic:\n%s\nvs\n%s", first, out.String())
	}
}

func TestWriteOK_InvalidFormat(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	if err := w.WriteOK(Format("bogus"), sampleList()); err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestWriteError_JSONEnvelope(t *testing.T) {
	var out bytes.Buffer
	w := New(&out, &bytes.Buffer{})
	oe := errors.New(errors.CodeHostNotFound, "host does not exist", map[string]any{"host": "x"})
	if err := w.WriteError(FormatJSON, oe); err != nil {
		t.Fatal(err)
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.OK || env.Error == nil || env.Error.Code != errors.CodeHostNotFound {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestWriteError_TableGoesToStderr(t *testing.T) {
	var out, errBuf bytes.Buffer
	w := New(&out, &errBuf)
	oe := errors.New(errors.CodeHostDuplicate, "host already exists", nil)
	if err := w.WriteError(FormatTable, oe); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should stay clean, got: %s", out.String())
	}
	msg := errBuf.String()
	if !strings.Contains(msg, "host already exists") || !strings.Contains(msg, "SSHMAN_HOST_DUPLICATE") {
		t.Errorf("unexpected error line: %s", msg)
	}
}

func TestHostDetail_TableRows(t *testing.T) {
	d := HostDetail{Entry: sshconf.Entry{
		Host:     "jump",
		Hostname: "jump.example.com",
		Extra:    []sshconf.Directive{{Key: "ProxyJump", Value: "bastion"}},
	}}
	rows := d.TableRows()
	if rows[0][1] != "jump" {
		t.Fatalf("unexpected host row: %v", rows[0])
	}
	if rows[3][1] != "N/A" {
		t.Fatalf("unset port should read N/A, got %v", rows[3])
	}
	last := rows[len(rows)-1]
	if last[0] != "ProxyJump" || last[1] != "bastion" {
		t.Fatalf("extras missing from detail rows: %v", rows)
	}
	if got := d.TableTitle(); got != "Details for Host 'jump'" {
		t.Fatalf("unexpected title: %q", got)
	}
}

func TestHostList_NAFills(t *testing.T) {
	l := HostList{Hosts: []HostRow{{Host: "bare"}}}
	rows := l.TableRows()
	if rows[0][1] != "N/A" || rows[0][2] != "N/A" || rows[0][3] != "N/A" {
		t.Fatalf("expected N/A fills, got %v", rows[0])
	}
}
