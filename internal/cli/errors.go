package cli

import (
	"fmt"
)

// outputErrorCommon prints a CLIError to stderr as "Error [CODE]: message"
// followed by an optional hint line, and returns it.
func outputErrorCommon(globals *Globals, code, message, hint string) error {
	cliErr := &CLIError{Code: code, Message: message, Hint: hint}
	if globals != nil && globals.Stderr != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
		if hint != "" {
			fmt.Fprintf(globals.Stderr, "Hint: %s\n", hint)
		}
	}
	return cliErr
}
