package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bgricker/cukereport/internal/config"
	"github.com/bgricker/cukereport/internal/model"
	"github.com/bgricker/cukereport/internal/report"
)

type noFiles struct{}

func (noFiles) ReadFile(string) ([]byte, error)      { return nil, nil }
func (noFiles) Screenshots(string) ([]string, error) { return nil, nil }

func assemble(t *testing.T, rep report.Report) model.Model {
	t.Helper()
	m, err := model.Assemble(config.Default(), rep, noFiles{})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	return m
}

func TestHTMLRendererDefaultTemplate(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewHTML(buf, "").Render(assemble(t, sampleReport())); err != nil {
		t.Fatalf("render html: %v", err)
	}

	out := buf.String()
	want := []string{
		`<img src="data:image/svg&#43;xml;base64,`,
		"Feature: Checkout",
		"<strong>cart</strong>",
		`<img src="pay_by_card-7-1.png" alt="pay_by_card-7-1.png">`,
		"<pre>hello</pre>",
		"line1\nline2\n",
		"expected rejection",
		"@smoke",
		`scenarioNames: ["Pay by voucher","Pay by card"]`,
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output", w)
		}
	}
}

func TestHTMLRendererCustomTemplate(t *testing.T) {
	buf := &bytes.Buffer{}
	text := `{{ .Summary.Status }} {{ duration .Summary.ConvertedDuration }} {{ len .Features }}`
	if err := NewHTML(buf, text).Render(assemble(t, sampleReport())); err != nil {
		t.Fatalf("render html: %v", err)
	}
	if buf.String() != "failed 9s 2" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestHTMLRendererErrors(t *testing.T) {
	m := assemble(t, sampleReport())

	if err := NewHTML(&bytes.Buffer{}, "{{ .Broken").Render(m); err == nil || !strings.Contains(err.Error(), "parse template") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if err := NewHTML(&bytes.Buffer{}, "{{ .Missing }}").Render(m); err == nil || !strings.Contains(err.Error(), "execute template") {
		t.Fatalf("expected execute error, got %v", err)
	}
}
