package cli

import (
	"errors"
	"io/fs"
)

func hintForInput(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "Check the input path; it should point at the benchmark log produced by the test binary"
	case errors.Is(err, fs.ErrPermission):
		return "The input file is not readable by the current user"
	}
	return ""
}

func hintForOutput(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "The output directory does not exist; create it first"
	case errors.Is(err, fs.ErrPermission):
		return "The output location is not writable by the current user"
	}
	return ""
}
