package matcher

import (
	"context"
	"testing"

	"github.com/launchpath/canvas/internal/catalog"
	"github.com/launchpath/canvas/internal/models"
)

// axisEmbedder maps known texts to fixed vectors so similarity is predictable.
type axisEmbedder struct {
	vectors map[string][]float32
}

func (e *axisEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	return e.vectors[text], nil
}

func (e *axisEmbedder) Dimensions() int { return 3 }
func (e *axisEmbedder) Close() error    { return nil }

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Language: models.LangEnglish,
		Records: []models.Occupation{
			{Label: "Baker", Description: "bakes bread", Embedding: []float32{1, 0, 0}},
			{Label: "Hairdresser", Description: "cuts hair", Embedding: []float32{0, 1, 0}},
			{Label: "Cook", Description: "prepares meals", Embedding: []float32{0.9, 0.1, 0}},
		},
	}
}

func TestTopMatches_Ranking(t *testing.T) {
	emb := &axisEmbedder{vectors: map[string][]float32{
		"open a bakery": {1, 0, 0},
	}}

	got, err := TopMatches(context.Background(), testCatalog(), emb, "open a bakery", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Label != "Baker" {
		t.Errorf("best match = %q, want Baker", got[0].Label)
	}
	if got[1].Label != "Cook" {
		t.Errorf("second match = %q, want Cook", got[1].Label)
	}
	if got[0].Score < got[1].Score {
		t.Error("results not sorted by descending score")
	}
}

func TestTopMatches_TieKeepsCatalogOrder(t *testing.T) {
	cat := &catalog.Catalog{
		Language: models.LangEnglish,
		Records: []models.Occupation{
			{Label: "First", Embedding: []float32{1, 0, 0}},
			{Label: "Second", Embedding: []float32{1, 0, 0}},
		},
	}
	emb := &axisEmbedder{vectors: map[string][]float32{"q": {1, 0, 0}}}

	got, err := TopMatches(context.Background(), cat, emb, "q", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Label != "First" || got[1].Label != "Second" {
		t.Errorf("tie order = %q, %q", got[0].Label, got[1].Label)
	}
}

func TestTopMatches_KLargerThanCatalog(t *testing.T) {
	emb := &axisEmbedder{vectors: map[string][]float32{"q": {0, 1, 0}}}
	got, err := TopMatches(context.Background(), testCatalog(), emb, "q", 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want all 3 records", len(got))
	}
}

func TestTopMatches_Degenerate(t *testing.T) {
	emb := &axisEmbedder{vectors: map[string][]float32{"q": {1, 0, 0}}}

	if got, _ := TopMatches(context.Background(), testCatalog(), emb, "q", 0); got != nil {
		t.Errorf("k=0 returned %v", got)
	}
	empty := &catalog.Catalog{Language: models.LangEnglish}
	if got, _ := TopMatches(context.Background(), empty, emb, "q", 5); got != nil {
		t.Errorf("empty catalog returned %v", got)
	}
}
