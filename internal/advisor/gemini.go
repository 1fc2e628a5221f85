package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Client is the slice of the Gemini API the advisor needs; it exists so the
// session can be tested against a scripted fake.
type Client interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configures the hosted-model client.
type GeminiConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultGeminiConfig returns sensible defaults; the API key is read from
// GEMINI_API_KEY when empty.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      "gemini-2.0-flash",
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
	}
}

// GeminiClient wraps the official GenAI SDK with rate-limit retries.
type GeminiClient struct {
	client     *genai.Client
	model      string
	maxRetries int
	baseDelay  time.Duration
	log        *zap.Logger
}

// NewGeminiClient creates a client against the Gemini API backend.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log *zap.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key missing: set GEMINI_API_KEY in the environment or .env")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 500 * time.Millisecond
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiClient{
		client:     client,
		model:      cfg.Model,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		log:        log,
	}, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string { return c.model }

// GenerateContent sends one generation request, retrying rate-limit failures
// with a doubling delay before giving up.
func (c *GeminiClient) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.baseDelay << uint(attempt-1)
			c.log.Warn("rate limited, backing off",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		started := time.Now()
		resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
		if err != nil {
			if isRateLimited(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("gemini generation failed: %w", err)
		}

		c.log.Debug("generation complete",
			zap.String("model", c.model),
			zap.Duration("elapsed", time.Since(started)))
		return resp, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}
