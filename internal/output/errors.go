package output

import "fmt"

// OutputError reports that converted results could not be written
type OutputError struct {
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
