package errors

// ExitCode is the process exit code; the mapping from error codes is a
// stable contract for scripts wrapping the CLI.
type ExitCode int

const (
	ExitOK ExitCode = 0

	// 2: bad usage or unparseable config file
	ExitConfig ExitCode = 2

	// 3: filesystem access failure
	ExitIO ExitCode = 3

	// 4: referenced host does not exist
	ExitNotFound ExitCode = 4

	// 5: add collided with an existing host
	ExitConflict ExitCode = 5

	// 6: unknown field or value failed validation
	ExitValidation ExitCode = 6

	// 10: internal error
	ExitInternal ExitCode = 10
)

func ExitCodeFor(code Code) ExitCode {
	switch code {
	case CodeConfigParse, CodeUsage:
		return ExitConfig
	case CodeIO:
		return ExitIO
	case CodeHostNotFound:
		return ExitNotFound
	case CodeHostDuplicate:
		return ExitConflict
	case CodeFieldInvalid, CodeValueInvalid:
		return ExitValidation
	case CodeInternal:
		fallthrough
	default:
		return ExitInternal
	}
}
