package aggregate

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/bgricker/cukereport/internal/provider"
	"github.com/bgricker/cukereport/internal/report"
)

// Embedding MIME types with special handling. Everything else is ignored.
const (
	MimePNG       = "image/png"
	MimePlainText = "text/plain"
	MimeLog       = "text/log"
)

// elementArtifacts holds the derived artifact fields of one scenario.
type elementArtifacts struct {
	imageNames []string
	plainText  []string
	logs       []string
	images     []report.ImageWrite
	problems   []string
}

// extractArtifacts walks every step of a scenario, named or not, in declaration order.
func extractArtifacts(element provider.Element) elementArtifacts {
	var out elementArtifacts
	seq := 0
	for _, step := range element.Steps {
		for _, embedding := range step.Embeddings {
			switch embedding.MimeType {
			case MimePNG:
				data, err := decodeBase64(embedding.Data)
				if err != nil {
					out.problems = append(out.problems, fmt.Sprintf("step %q: decode image: %v", step.Name, err))
					continue
				}
				seq++
				name := ImageName(element.Name, element.Line, seq)
				out.imageNames = append(out.imageNames, name)
				out.images = append(out.images, report.ImageWrite{Name: name, Data: data})
			case MimePlainText:
				data, err := decodeBase64(embedding.Data)
				if err != nil {
					out.problems = append(out.problems, fmt.Sprintf("step %q: decode text: %v", step.Name, err))
					continue
				}
				out.plainText = append(out.plainText, string(data))
			case MimeLog:
				data, err := decodeBase64(embedding.Data)
				if err != nil {
					out.problems = append(out.problems, fmt.Sprintf("step %q: decode log: %v", step.Name, err))
					continue
				}
				out.logs = strings.Split(toASCII(data), "\n")
			}
		}
	}
	return out
}

// ImageName builds the file name for the seq-th image of an element.
func ImageName(elementName string, line, seq int) string {
	return fileSafe(fmt.Sprintf("%s-%d-%d", elementName, line, seq)) + ".png"
}

// nonASCII strips every rune outside the ASCII range.
var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))

// fileSafe drops non-ASCII runes, turns whitespace into underscores and
// lower-cases the result. Path separators become underscores so names always
// stay inside the destination directory.
func fileSafe(s string) string {
	s, _, _ = transform.String(nonASCII, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsSpace(r), r == '/', r == '\\':
			b.WriteByte('_')
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func decodeBase64(data string) ([]byte, error) {
	data = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(data); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

// toASCII keeps the low seven bits of every byte.
func toASCII(data []byte) string {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b & 0x7f
	}
	return string(out)
}
