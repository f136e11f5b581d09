package output

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/bgricker/cukereport/internal/model"
)

//go:embed templates/report.html.tmpl
var defaultTemplate string

// HTMLRenderer executes a report template against an assembled model.
type HTMLRenderer struct {
	out  io.Writer
	text string
}

// NewHTML creates an HTML renderer. An empty text selects the bundled template.
func NewHTML(out io.Writer, text string) *HTMLRenderer {
	if text == "" {
		text = defaultTemplate
	}
	return &HTMLRenderer{out: out, text: text}
}

// Render parses the template with the model helpers and executes it.
func (h *HTMLRenderer) Render(m model.Model) error {
	tmpl, err := template.New("report").Funcs(model.Funcs()).Parse(h.text)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	if err := tmpl.Execute(h.out, m); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}
