package parser

import "fmt"

// InputError reports that a benchmark log could not be read
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
