package cli

// CLIError is a structured error used for consistent text emission.
type CLIError struct {
	Code    string
	Message string
	Hint    string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Error codes reported on stderr
const (
	CodeUsage         = "USAGE"
	CodeConfig        = "CONFIG"
	CodeInvalidFilter = "INVALID_FILTER"
	CodeInputIO       = "INPUT_IO"
	CodeOutputIO      = "OUTPUT_IO"
)
