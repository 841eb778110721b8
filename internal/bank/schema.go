package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://question-bank.json"

var optionListSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"key":  map[string]any{"type": "string", "minLength": 1},
			"text": map[string]any{"type": "string"},
		},
		"required":             []any{"key", "text"},
		"additionalProperties": false,
	},
}

// bankSchema describes the on-disk shape of a question bank document.
// Cross-reference checks (dangling keys, coverage) live in validate.go.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "integer", "minimum": 1},
			"kind":   map[string]any{"type": "string", "enum": []any{"multiple", "matching", "image-matching"}},
			"title":  map[string]any{"type": "string", "minLength": 1},
			"prompt": map[string]any{"type": "string"},
			"statements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"image":   map[string]any{"type": "string"},
			"options": optionListSchema,
			"correct": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			},
			"left": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "minLength": 1},
						"text": map[string]any{"type": "string"},
					},
					"required":             []any{"id", "text"},
					"additionalProperties": false,
				},
			},
			"right": optionListSchema,
			"solution": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string", "minLength": 1},
			},
			"images": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":      map[string]any{"type": "string", "minLength": 1},
						"src":     map[string]any{"type": "string", "minLength": 1},
						"correct": map[string]any{"type": "string", "minLength": 1},
					},
					"required":             []any{"id", "src", "correct"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"id", "kind", "title"},
		"additionalProperties": false,
		"allOf": []any{
			kindRequires("multiple", "options", "correct"),
			kindRequires("matching", "left", "right", "solution"),
			kindRequires("image-matching", "images", "options"),
		},
	},
}

func kindRequires(kind string, fields ...string) map[string]any {
	required := make([]any, len(fields))
	for i, f := range fields {
		required[i] = f
	}
	return map[string]any{
		"if": map[string]any{
			"properties": map[string]any{"kind": map[string]any{"const": kind}},
			"required":   []any{"kind"},
		},
		"then": map[string]any{"required": required},
	}
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles bankSchema once and caches the result.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain JSON value, so round-trip the Go literal.
		raw, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// checkSchema validates a decoded YAML document against bankSchema.
func checkSchema(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	// Normalize numbers and maps the same way the compiler sees them.
	raw, err := json.Marshal(stringKeys(doc))
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// stringKeys rewrites the mappings yaml.v3 decodes with non-string keys
// (for example `solution: {1: a}`) into string-keyed maps, the form the
// typed decode accepts and JSON can encode.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = stringKeys(val)
		}
		return out
	}
	return v
}
