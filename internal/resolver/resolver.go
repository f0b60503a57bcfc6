// Package resolver runs the occupation-resolution gate: given a business idea
// and a shortlist of candidate occupations, it asks the model to name the
// matching occupation (or decline) and to describe the required skills.
package resolver

import (
	"context"
	"regexp"
	"strings"

	"github.com/launchpath/canvas/internal/llm"
	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/internal/prompts"
)

var (
	// Models like to prefix the answer line despite instructions, with or
	// without markdown bold around the prefix. The colon may sit inside the
	// bold ("**Matching Occupation:**") or after it ("**Occupation Match**:").
	preamblePattern = regexp.MustCompile(`^\*{0,2}(?:Occupation Match|Matching Occupation):?\*{0,2}:?\s*`)
	boldPattern     = regexp.MustCompile(`^\*\*(.+)\*\*$`)
)

// Result holds the parsed model answer.
type Result struct {
	// Match is the occupation named on the first line, cleaned of
	// formatting. May be the localized sentinel or anything else the model
	// produced; reconciliation against the candidates happens downstream.
	Match string
	// Skills is the free-text skills paragraph from the rest of the
	// response.
	Skills string
}

// Resolve builds the localized prompt, queries the model and parses the
// two-part answer.
func Resolve(ctx context.Context, gen llm.TextGenerator, lang models.Language, idea, candidates string) (Result, error) {
	prompt, err := prompts.ResolverPrompt(lang, idea, candidates)
	if err != nil {
		return Result{}, err
	}
	raw, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		return Result{}, err
	}
	return ParseResponse(raw), nil
}

// ParseResponse splits the raw model output into the occupation line and the
// skills paragraph. The first line is cleaned of known preambles and bold
// markers; when no remainder exists the skills text falls back to a
// placeholder.
func ParseResponse(raw string) Result {
	parts := strings.SplitN(raw, "\n", 2)

	match := strings.TrimSpace(parts[0])
	match = preamblePattern.ReplaceAllString(match, "")
	if m := boldPattern.FindStringSubmatch(match); m != nil {
		match = m[1]
	}
	match = strings.TrimSpace(match)

	skills := prompts.NoSkillsPlaceholder
	if len(parts) > 1 {
		if rest := strings.TrimSpace(parts[1]); rest != "" {
			skills = rest
		}
	}
	return Result{Match: match, Skills: skills}
}
