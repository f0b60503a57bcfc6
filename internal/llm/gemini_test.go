package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limited", genai.APIError{Code: 429}, true},
		{"server error", genai.APIError{Code: 503}, true},
		{"internal error", genai.APIError{Code: 500}, true},
		{"bad request", genai.APIError{Code: 400}, false},
		{"unauthorized", genai.APIError{Code: 403}, false},
		{"wrapped rate limit", fmt.Errorf("call failed: %w", genai.APIError{Code: 429}), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("call failed: %w", context.DeadlineExceeded), true},
		{"plain error", errors.New("boom"), false},
		{"cancelled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTransient(tt.err); got != tt.want {
				t.Errorf("isTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWithRetry_RateLimitRetried(t *testing.T) {
	calls := 0
	out, err := withRetry(context.Background(), 1, time.Millisecond, isTransient, func() (string, error) {
		calls++
		if calls == 1 {
			return "", genai.APIError{Code: 429}
		}
		return "recovered", nil
	})
	if err != nil || out != "recovered" {
		t.Fatalf("got %q, %v", out, err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestWithRetry_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), 1, time.Millisecond, isTransient, func() (string, error) {
		calls++
		return "", genai.APIError{Code: 400}
	})
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 400 {
		t.Fatalf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
