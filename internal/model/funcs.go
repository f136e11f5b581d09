package model

import (
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var markdownPolicy = bluemonday.UGCPolicy()

// Funcs returns the helpers available to report templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"images":   Images,
		"duration": Duration,
		"markdown": Markdown,
		"json":     toJS,
		"join":     strings.Join,
		"ms":       func(d time.Duration) int64 { return d.Milliseconds() },
	}
}

// Images renders one img tag per entry of a comma-joined list of sources.
func Images(sources string) template.HTML {
	var b strings.Builder
	for _, src := range strings.Split(sources, ",") {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		escaped := template.HTMLEscapeString(src)
		b.WriteString(`<img src="` + escaped + `" alt="` + escaped + `">`)
	}
	return template.HTML(b.String())
}

// Duration passes an already formatted duration through unchanged.
func Duration(converted string) string {
	return converted
}

// Markdown renders feature and scenario descriptions, then strips anything unsafe.
func Markdown(content string) template.HTML {
	extensions := blackfriday.CommonExtensions |
		blackfriday.HardLineBreak |
		blackfriday.NoEmptyLineBeforeBlock
	out := blackfriday.Run([]byte(content), blackfriday.WithExtensions(extensions))
	return template.HTML(markdownPolicy.SanitizeBytes(out))
}
