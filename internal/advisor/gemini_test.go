package advisor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), GeminiConfig{}, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(genai.APIError{Code: 429}))
	assert.True(t, isRateLimited(genai.APIError{Status: "RESOURCE_EXHAUSTED"}))
	assert.True(t, isRateLimited(fmt.Errorf("wrapped: %w", genai.APIError{Code: 429})))
	assert.False(t, isRateLimited(genai.APIError{Code: 500, Status: "INTERNAL"}))
	assert.False(t, isRateLimited(fmt.Errorf("plain failure")))
}

func TestDefaultGeminiConfig(t *testing.T) {
	cfg := DefaultGeminiConfig()
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.NotZero(t, cfg.BaseDelay)
}
