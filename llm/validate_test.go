package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

var greetingSchema = &Schema{
	Name: "greeting",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"message"},
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
		},
	},
}

func TestValidateAgainstSchema(t *testing.T) {
	t.Run("nil schema always passes", func(t *testing.T) {
		assert.NoError(t, validateAgainstSchema(nil, json.RawMessage(`not even json`)))
	})

	t.Run("conforming document passes", func(t *testing.T) {
		assert.NoError(t, validateAgainstSchema(greetingSchema, json.RawMessage(`{"message":"hi"}`)))
	})

	t.Run("missing required field fails", func(t *testing.T) {
		err := validateAgainstSchema(greetingSchema, json.RawMessage(`{}`))
		var bad *ErrBadResponse
		assert.ErrorAs(t, err, &bad)
	})

	t.Run("invalid JSON fails", func(t *testing.T) {
		err := validateAgainstSchema(greetingSchema, json.RawMessage(`{`))
		var bad *ErrBadResponse
		assert.ErrorAs(t, err, &bad)
	})
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestFactoryBuildsMockWithoutKey(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
