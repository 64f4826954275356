package llm

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-playground/assert/v2"
)

func TestNewAnthropicClientDefaultModel(t *testing.T) {
	c := NewAnthropicClient("test-key", "")

	assert.Equal(t, anthropic.ModelClaudeHaiku4_5, c.model)
	assert.Equal(t, string(anthropic.ModelClaudeHaiku4_5), c.Name())
}

func TestNewAnthropicClientModelOverride(t *testing.T) {
	c := NewAnthropicClient("test-key", "claude-sonnet-4-5")

	assert.Equal(t, anthropic.Model("claude-sonnet-4-5"), c.model)
	assert.Equal(t, "claude-sonnet-4-5", c.Name())
}
