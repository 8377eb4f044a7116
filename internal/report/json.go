package report

import (
	"encoding/json"
	"io"

	"github.com/certlab/examgrade/internal/exam"
)

// WriteJSON writes the result as indented JSON, field names matching
// the wire contract of the result types.
func WriteJSON(w io.Writer, result *exam.DetailedResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
