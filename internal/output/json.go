package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/vburojevic/benchconv/internal/domain"
)

// Indent is the fixed indentation of the JSON results file
const Indent = "  "

// JSONWriter writes benchmark records as a pretty-printed JSON array
type JSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONWriter creates a new JSON writer
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // benchmark names often contain <, > and &
	enc.SetIndent("", Indent)
	return &JSONWriter{
		w:       w,
		encoder: enc,
	}
}

// WriteRecords writes records as one JSON array. No records is written as [].
func (j *JSONWriter) WriteRecords(records []domain.BenchmarkRecord) error {
	if records == nil {
		records = []domain.BenchmarkRecord{}
	}
	return j.encoder.Encode(records)
}

// WriteFile creates or truncates path and writes records to it
func WriteFile(path string, records []domain.BenchmarkRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return &OutputError{Path: path, Err: err}
	}

	if err := NewJSONWriter(f).WriteRecords(records); err != nil {
		_ = f.Close()
		return &OutputError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	return nil
}
