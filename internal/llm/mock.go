package llm

import (
	"context"
	"sync"
)

// ScriptedGenerator returns canned responses in order. Test helper.
type ScriptedGenerator struct {
	mu        sync.Mutex
	Responses []string
	Errs      []error
	Prompts   []string
}

func (s *ScriptedGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Prompts = append(s.Prompts, prompt)
	call := len(s.Prompts) - 1

	if call < len(s.Errs) && s.Errs[call] != nil {
		return "", s.Errs[call]
	}
	if call < len(s.Responses) {
		return s.Responses[call], nil
	}
	return "", ErrGeneration
}
