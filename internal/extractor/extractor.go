// Package extractor parses the free-form canvas text back into its nine
// sections using fuzzy heading detection.
package extractor

import (
	"strings"

	"github.com/launchpath/canvas/internal/fuzzy"
	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/internal/prompts"
)

// headingThreshold is the minimum partial-ratio score for a line to count as
// a section heading. Below it, decorated or reworded headings are treated as
// body text.
const headingThreshold = 80

// Extract splits the generated canvas text into sections keyed by the
// localized section titles. Headings are recognized fuzzily so markdown
// decoration or small rewordings still match; each title is consumed after
// its first hit, so a later line echoing a heading inside body text cannot
// reopen the section. Text before the first recognized heading is discarded.
// Missing sections are simply absent from the result.
func Extract(raw string, lang models.Language) (map[string]string, error) {
	remaining, err := prompts.SectionTitles(lang)
	if err != nil {
		return nil, err
	}

	sections := make(map[string]string)
	var current string
	var content []string

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(strings.Join(content, "\n"))
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title, idx := bestMatch(line, remaining); title != "" {
			flush()
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			current = title
			content = content[:0]
			continue
		}
		if current != "" {
			content = append(content, line)
		}
	}
	flush()
	return sections, nil
}

// bestMatch returns the remaining title scoring highest against the line, or
// "" when nothing clears the threshold.
func bestMatch(line string, titles []string) (string, int) {
	lower := strings.ToLower(line)
	best, bestIdx, bestScore := "", -1, 0
	for i, title := range titles {
		score := fuzzy.PartialRatio(lower, strings.ToLower(title))
		if score >= headingThreshold && score > bestScore {
			best, bestIdx, bestScore = title, i, score
		}
	}
	return best, bestIdx
}
