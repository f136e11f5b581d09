package output

import (
	"encoding/json"
	"io"

	"github.com/bgricker/cukereport/internal/report"
)

// JSONRenderer emits the aggregated report as structured data.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Render encodes the report as indented JSON. Decoded image bytes are not included.
func (j *JSONRenderer) Render(rep report.Report) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
