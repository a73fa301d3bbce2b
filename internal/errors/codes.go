package errors

// Code is a stable string error code for programmatic consumers.
// Codes are append-only; an existing code never changes meaning.
type Code string

const (
	// Config file
	CodeConfigParse Code = "SSHMAN_CONFIG_PARSE"
	CodeIO          Code = "SSHMAN_IO"

	// Host entries
	CodeHostNotFound  Code = "SSHMAN_HOST_NOT_FOUND"
	CodeHostDuplicate Code = "SSHMAN_HOST_DUPLICATE"
	CodeFieldInvalid  Code = "SSHMAN_FIELD_INVALID"
	CodeValueInvalid  Code = "SSHMAN_VALUE_INVALID"

	// CLI / flags
	CodeUsage Code = "SSHMAN_USAGE"

	// Internal
	CodeInternal Code = "SSHMAN_INTERNAL"
)

func AllCodes() []Code {
	return []Code{
		CodeConfigParse,
		CodeIO,
		CodeHostNotFound,
		CodeHostDuplicate,
		CodeFieldInvalid,
		CodeValueInvalid,
		CodeUsage,
		CodeInternal,
	}
}
