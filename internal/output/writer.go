package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/mkrenz/sshman/internal/errors"
)

type Writer struct {
	Out io.Writer
	Err io.Writer
}

func New(out, err io.Writer) Writer {
	return Writer{Out: out, Err: err}
}

// WriteOK writes data in the requested format. json and yaml wrap it in
// the ok/schema_version envelope; table and csv use the Tabular shape
// when the data has one.
func (w Writer) WriteOK(format Format, data any) error {
	switch format {
	case FormatJSON:
		return w.writeEnvelope(format, Envelope{OK: true, SchemaVersion: SchemaVersion, Data: data})
	case FormatYAML:
		return w.writeEnvelope(format, Envelope{OK: true, SchemaVersion: SchemaVersion, Data: data})
	case FormatTable:
		if t, ok := data.(Tabular); ok {
			_, err := fmt.Fprint(w.Out, RenderTable(t))
			return err
		}
		return writeKV(w.Out, data)
	case FormatCSV:
		if t, ok := data.(Tabular); ok {
			return writeTabularCSV(w.Out, t)
		}
		return writeFallbackCSV(w.Out, true, nil)
	default:
		return errors.New(errors.CodeUsage, "invalid output format", map[string]any{"format": string(format)})
	}
}

// WriteText writes an already-rendered line for the table format.
func (w Writer) WriteText(s string) error {
	_, err := fmt.Fprintln(w.Out, s)
	return err
}

// WriteError writes a failed envelope. The table format keeps stdout
// clean and puts a one-line message on stderr.
func (w Writer) WriteError(format Format, oe *errors.OpError) error {
	switch format {
	case FormatTable:
		_, err := fmt.Fprintln(w.Err, ErrorLine(oe))
		return err
	case FormatCSV:
		return writeFallbackCSV(w.Out, false, oe)
	default:
		errObj := &ErrorObject{Code: oe.Code, Message: oe.Message, Details: oe.Details}
		return w.writeEnvelope(format, Envelope{OK: false, SchemaVersion: SchemaVersion, Error: errObj})
	}
}

func (w Writer) writeEnvelope(format Format, env Envelope) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w.Out)
		enc.SetEscapeHTML(false)
		return enc.Encode(env)
	case FormatYAML:
		b, err := yaml.Marshal(env)
		if err != nil {
			return err
		}
		if _, err := w.Out.Write(b); err != nil {
			return err
		}
		if len(b) == 0 || b[len(b)-1] != '\n' {
			_, _ = w.Out.Write([]byte("\n"))
		}
		return nil
	default:
		return errors.New(errors.CodeUsage, "invalid output format", map[string]any{"format": string(format)})
	}
}

func writeTabularCSV(out io.Writer, t Tabular) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()
	if err := cw.Write(t.TableHeader()); err != nil {
		return err
	}
	for _, row := range t.TableRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeFallbackCSV(out io.Writer, ok bool, oe *errors.OpError) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()
	_ = cw.Write([]string{"ok", fmt.Sprintf("%v", ok)})
	_ = cw.Write([]string{"schema_version", fmt.Sprintf("%d", SchemaVersion)})
	if oe != nil {
		_ = cw.Write([]string{"error.code", string(oe.Code)})
		_ = cw.Write([]string{"error.message", oe.Message})
	}
	return cw.Error()
}

func writeKV(out io.Writer, data any) error {
	tw := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var kv map[string]any
	if err := json.Unmarshal(b, &kv); err != nil {
		// Not an object; print as-is.
		_, _ = fmt.Fprintf(tw, "%s\n", strings.TrimSpace(string(b)))
		return tw.Flush()
	}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(tw, "%s\t%v\n", k, kv[k])
	}
	return tw.Flush()
}
