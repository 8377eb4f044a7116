// Package llm abstracts the language-model backends used to turn a
// graded exam result into narrative study guidance. Consumers depend on
// the Provider interface only; concrete backends (Anthropic, OpenAI) and
// a deterministic mock hide behind the factory.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt.
type Provider interface {
	// Generate sends the request and returns the model's output. When
	// the request carries a Schema, the returned Content is JSON already
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Advice generation is single-turn, so
	// a plain string suffices.
	Prompt string

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means
	// deterministic.
	Temperature float64
}

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON (schema-validated when a Schema was
	// requested) or raw text otherwise.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// Truncated reports whether generation stopped at the token cap.
	Truncated bool

	// InputTokens and OutputTokens report token consumption.
	InputTokens  int
	OutputTokens int
}
