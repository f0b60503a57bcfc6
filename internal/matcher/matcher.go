// Package matcher ranks occupation records against a query embedding.
package matcher

import (
	"context"
	"fmt"
	"sort"

	"github.com/launchpath/canvas/internal/catalog"
	"github.com/launchpath/canvas/internal/embedding"
	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/pkg/utils"
)

// TopMatches embeds the query and returns the k most similar occupations by
// cosine similarity, best first. Ties keep catalog order. Asking for more
// candidates than the catalog holds returns them all; k <= 0 returns none.
func TopMatches(ctx context.Context, cat *catalog.Catalog, emb embedding.Embedder, query string, k int) ([]models.MatchCandidate, error) {
	if k <= 0 || cat.Size() == 0 {
		return nil, nil
	}

	qv, err := emb.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored := make([]models.MatchCandidate, 0, cat.Size())
	for i := range cat.Records {
		rec := &cat.Records[i]
		scored = append(scored, models.MatchCandidate{
			Label:       rec.Label,
			Description: rec.Description,
			Score:       utils.CosineSimilarity(qv, rec.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < len(scored) {
		scored = scored[:k]
	}
	return scored, nil
}
