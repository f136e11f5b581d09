package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "message only",
			err:      &Error{Message: "source is required"},
			expected: "source is required",
		},
		{
			name:     "with path",
			err:      Config("source not found", "out/cucumber.json"),
			expected: `source not found "out/cucumber.json"`,
		},
		{
			name:     "with path and cause",
			err:      IO("write image", "reports/a.png", stderrors.New("disk full")),
			expected: `write image "reports/a.png": disk full`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", Configf("bad format %q", "xml"), ExitConfigError},
		{"parse", Parse("a.json", stderrors.New("eof")), ExitParseError},
		{"io", IO("read logo", "logo.svg", stderrors.New("denied")), ExitIOError},
		{"plain", stderrors.New("boom"), ExitIOError},
		{"wrapped", fmt.Errorf("generate: %w", Parse("a.json", nil)), ExitParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsAndUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := fmt.Errorf("outer: %w", Parse("doc.json", cause))

	if !Is(err, KindParse) {
		t.Fatalf("expected parse kind")
	}
	if Is(err, KindConfig) {
		t.Fatalf("did not expect config kind")
	}
	if !stderrors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
}
