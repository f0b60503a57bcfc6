// Package composer builds the narrative fed into the canvas prompt, choosing
// between the matched-occupation and no-match variants.
package composer

import (
	"strings"

	"github.com/launchpath/canvas/internal/catalog"
	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/internal/prompts"
)

// Compose returns the canvas narrative. The match counts only when it is
// non-empty, differs from the localized no-match sentinel, and names one of
// the shortlisted candidates; anything else falls back to the no-match
// variant. A matched occupation pulls its detail text from the catalog, with
// an empty detail when the record carries none.
func Compose(cat *catalog.Catalog, idea, match, skills string, candidates []string) (string, error) {
	lang := cat.Language
	if !isMatch(lang, match, candidates) {
		return prompts.NoMatchNarrative(lang, idea, skills)
	}
	detail, _ := cat.DetailFor(match)
	return prompts.MatchedNarrative(lang, idea, match, skills, detail)
}

func isMatch(lang models.Language, match string, candidates []string) bool {
	if match == "" || strings.EqualFold(match, prompts.NoMatchSentinel(lang)) {
		return false
	}
	for _, c := range candidates {
		if strings.EqualFold(c, match) {
			return true
		}
	}
	return false
}
