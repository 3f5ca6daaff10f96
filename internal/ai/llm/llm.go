// Package llm defines the model-client abstraction for the content engine
// and the resilience layer on top of it.
//
// The Client interface has two capabilities: schema-bound object generation
// and free-text generation. The OpenAI adapter implements both against any
// OpenAI-compatible chat-completions endpoint.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// # Classified Errors
//
// These two sentinels mark failures of the STRUCTURED-OUTPUT mechanism, as
// opposed to failures of the provider itself. Only classified failures are
// eligible for the free-text fallback in GenerateResilientObject; anything
// else (auth, quota, network) propagates untouched.
var (
	// ErrSchemaParseFailure indicates the model answered, but the payload
	// could not be parsed against the requested schema.
	ErrSchemaParseFailure = errors.New("llm: response does not match requested schema")

	// ErrNoObjectProduced indicates the model produced no usable object at
	// all (empty choice list, refusal, or empty content).
	ErrNoObjectProduced = errors.New("llm: no object produced")
)

// Usage reports token consumption for a single generation call.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// ObjectRequest asks for a response bound to a JSON schema.
type ObjectRequest struct {
	System      string
	Prompt      string
	SchemaName  string
	Schema      map[string]any
	Model       string
	Temperature float64
	MaxTokens   int64
}

// ObjectResult carries the raw JSON object and its token usage.
type ObjectResult struct {
	JSON  json.RawMessage
	Usage Usage
	Model string
}

// TextRequest asks for a free-text response.
type TextRequest struct {
	System      string
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int64
}

// TextResult carries the text and its token usage.
type TextResult struct {
	Text  string
	Usage Usage
	Model string
}

// Client is the generation capability consumed by the writer service.
type Client interface {
	GenerateObject(context context.Context, request ObjectRequest) (*ObjectResult, error)
	GenerateText(context context.Context, request TextRequest) (*TextResult, error)
}

// IsClassified reports whether err is one of the structured-output
// failures that the resilience layer may recover from.
func IsClassified(err error) bool {
	return errors.Is(err, ErrSchemaParseFailure) || errors.Is(err, ErrNoObjectProduced)
}
