package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// The engine assumes schema-valid inputs; this package is the boundary
// that makes that assumption true. Both file formats are validated
// against these schemas before any struct decoding happens.

var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"exam": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":                map[string]any{"type": "string"},
				"title":             map[string]any{"type": "string"},
				"passing_threshold": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			},
			"required": []any{"id"},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":                  map[string]any{"type": "string", "minLength": 1},
					"text":                map[string]any{"type": "string"},
					"question_number":     map[string]any{"type": "integer", "minimum": 1},
					"required_selections": map[string]any{"type": "integer", "minimum": 1},
					"difficulty_level": map[string]any{
						"type": "string",
						"enum": []any{"easy", "medium", "hard"},
					},
					"knowledge_area": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":                map[string]any{"type": "string", "minLength": 1},
							"name":              map[string]any{"type": "string"},
							"weight_percentage": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
						},
						"required": []any{"id", "name"},
					},
					"answers": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":         map[string]any{"type": "string", "minLength": 1},
								"text":       map[string]any{"type": "string"},
								"is_correct": map[string]any{"type": "boolean"},
							},
							"required": []any{"id"},
						},
					},
				},
				"required": []any{"id", "question_number", "required_selections", "difficulty_level", "knowledge_area", "answers"},
			},
		},
	},
	"required": []any{"exam", "questions"},
}

var sessionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"attempt": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":                 map[string]any{"type": "string"},
				"time_spent_minutes": map[string]any{"type": "integer", "minimum": 0},
				"question_count":     map[string]any{"type": "integer", "minimum": 0},
				"answer_count":       map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"time_spent_minutes"},
		},
		"answers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question_id":        map[string]any{"type": "string", "minLength": 1},
					"answer_id":          map[string]any{"type": "string"},
					"time_spent_seconds": map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []any{"question_id"},
			},
		},
	},
	"required": []any{"attempt", "answers"},
}

var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument checks raw JSON against a named schema definition.
func validateDocument(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and
// caches it.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Round-trip through encoding/json to normalize.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
