package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"google.golang.org/genai"
)

const retryBackoff = 2 * time.Second

// GeminiConfig controls the Gemini-backed generator.
type GeminiConfig struct {
	APIKey        string
	Model         string
	Timeout       time.Duration
	MaxRetries    int
	MaxConcurrent int
}

// GeminiGenerator calls the Gemini API. A semaphore caps in-flight requests
// so a burst of canvas jobs cannot exhaust the API quota in one spike.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	retries int
	sem     *semaphore.Weighted
	logger  *zap.Logger
}

// NewGeminiGenerator creates a generator against the Gemini API.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	concurrent := cfg.MaxConcurrent
	if concurrent <= 0 {
		concurrent = 1
	}
	return &GeminiGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		retries: cfg.MaxRetries,
		sem:     semaphore.NewWeighted(int64(concurrent)),
		logger:  logger,
	}, nil
}

// GenerateText sends the prompt to Gemini and returns the response text.
// Rate-limit and server errors are retried once with backoff; everything else
// fails immediately. All failures wrap ErrGeneration.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer g.sem.Release(1)

	start := time.Now()
	out, err := withRetry(ctx, g.retries, retryBackoff, isTransient, func() (string, error) {
		callCtx := ctx
		if g.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, g.timeout)
			defer cancel()
		}
		resp, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		text := strings.TrimSpace(resp.Text())
		if text == "" {
			return "", errors.New("empty response from model")
		}
		return text, nil
	})
	if err != nil {
		g.logger.Warn("generation failed",
			zap.String("model", g.model),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	g.logger.Debug("generation complete",
		zap.String("model", g.model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("chars", len(out)))
	return out, nil
}

// isTransient reports whether the call is worth retrying: rate limiting,
// server-side errors, and timeouts. genai returns APIError by value, so the
// errors.As target must be the value type.
func isTransient(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return errors.Is(err, context.DeadlineExceeded)
}
