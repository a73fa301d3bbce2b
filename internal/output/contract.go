package output

import "github.com/mkrenz/sshman/internal/errors"

const SchemaVersion = 1

type ErrorObject struct {
	Code    errors.Code    `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

type Envelope struct {
	OK            bool         `json:"ok" yaml:"ok"`
	SchemaVersion int          `json:"schema_version" yaml:"schema_version"`
	Error         *ErrorObject `json:"error,omitempty" yaml:"error,omitempty"`
	Data          any          `json:"data,omitempty" yaml:"data,omitempty"`
}

// Tabular is implemented by view types that have a natural table shape;
// the table and csv formats use it, json and yaml marshal the type itself.
type Tabular interface {
	TableTitle() string
	TableHeader() []string
	TableRows() [][]string
}
