package cucumber

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	cerrors "github.com/bgricker/cukereport/internal/errors"
	"github.com/bgricker/cukereport/internal/provider"
	schemafs "github.com/bgricker/cukereport/internal/provider/cucumber/schema"
)

const schemaName = "cucumber.schema.json"

var (
	documentSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// Parser loads cucumber JSON result documents from disk.
type Parser struct {
	Root string
}

// NewParser constructs a Parser that resolves relative paths against root.
func NewParser(root string) *Parser {
	return &Parser{Root: root}
}

// Parse reads the document at path and decodes it into a Run.
func (p *Parser) Parse(path string) (provider.Run, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(p.Root, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return provider.Run{}, cerrors.IO("read source", path, err)
	}
	return Decode(data, path)
}

// Decode validates data against the cucumber schema and decodes it.
func Decode(data []byte, displayPath string) (provider.Run, error) {
	if err := compileSchema(); err != nil {
		return provider.Run{}, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return provider.Run{}, cerrors.Parse(displayPath, fmt.Errorf("invalid JSON: %w", err))
	}
	if err := documentSchema.Validate(doc); err != nil {
		return provider.Run{}, cerrors.Parse(displayPath, fmt.Errorf("unexpected document shape: %w", err))
	}

	var features []provider.Feature
	if err := json.Unmarshal(data, &features); err != nil {
		return provider.Run{}, cerrors.Parse(displayPath, err)
	}
	return provider.Run{Source: displayPath, Features: features}, nil
}

func compileSchema() error {
	compileOnce.Do(func() {
		raw, err := schemafs.FS.ReadFile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("read document schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal document schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("add document schema resource: %w", err)
			return
		}
		documentSchema, err = compiler.Compile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile document schema: %w", err)
		}
	})
	return compileErr
}
