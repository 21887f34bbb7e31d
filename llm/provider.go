// Package llm abstracts the text-generation providers used for audit
// reports and the report chat assistant.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the minimal surface the report and chat services need.
type Provider interface {
	// Complete sends a prompt and returns the full response. When the
	// request carries a Schema the response content is JSON validated
	// against it.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Streamer is implemented by providers that can deliver the response
// incrementally. Callers must treat it as optional and fall back to
// Complete when the assertion fails.
type Streamer interface {
	// Stream invokes emit for every content delta in order. A non-nil
	// error from emit aborts the stream and is returned unchanged.
	Stream(ctx context.Context, req Request, emit func(delta string) error) error
}

// Request describes one generation call.
type Request struct {
	// System sets the assistant's role and constraints.
	System string

	// Messages is the conversation so far. Report generation sends a
	// single user message; chat sends the transcript.
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output
	// conforming to it. The response is validated before being returned.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Response is the provider's full answer.
type Response struct {
	// Content is raw text, or the validated JSON document when the
	// request carried a Schema.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// InputTokens / OutputTokens report usage when the provider exposes it.
	InputTokens  int
	OutputTokens int
}
