package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator checks JSON documents against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator returns a validator that compiles each schema once
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadData, dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

func (v *validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgLoadSchema, schemaPath, err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseData, err)
	}

	if err := schema.Validate(doc); err != nil {
		return describe(err)
	}
	return nil
}

func (v *validator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.schemas[schemaPath]; ok {
		return s, nil
	}

	resolved, err := findUpward(schemaPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	if err := v.compiler.AddResource(resolved, doc); err != nil {
		return nil, err
	}
	s, err := v.compiler.Compile(resolved)
	if err != nil {
		return nil, err
	}

	v.schemas[schemaPath] = s
	return s, nil
}

// describe flattens a validation error tree into one line per failing location
func describe(err error) error {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%s: %w", ErrMsgSchemaFailed, err)
	}

	var lines []string
	walk(verr, &lines)
	return fmt.Errorf("%s:\n%s", ErrMsgSchemaFailed, strings.Join(lines, "\n"))
}

func walk(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		at := "/" + strings.Join(err.InstanceLocation, "/")
		keyword := ""
		if err.ErrorKind != nil {
			keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
		}
		*lines = append(*lines, fmt.Sprintf("  - at %s: %s", at, keyword))
		return
	}
	for _, cause := range err.Causes {
		walk(cause, lines)
	}
}

// findUpward resolves a relative schema path against the working directory
// and its parents, stopping at the module root.
func findUpward(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s: %s", ErrMsgSchemaNotFound, path)
}
