package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/launchpath/canvas/internal/catalog"
	"github.com/launchpath/canvas/internal/embedding"
	"github.com/launchpath/canvas/internal/llm"
	"github.com/launchpath/canvas/internal/models"
)

type staticSource struct {
	cat *catalog.Catalog
	err error
}

func (s *staticSource) Get(_ context.Context, _ models.Language) (*catalog.Catalog, error) {
	return s.cat, s.err
}

func fixtureCatalog(emb embedding.Embedder) *catalog.Catalog {
	ctx := context.Background()
	mk := func(text string) []float32 {
		v, _ := emb.Embed(ctx, text)
		return v
	}
	return &catalog.Catalog{
		Language: models.LangGerman,
		Records: []models.Occupation{
			{Label: "Friseur/Friseurin", Description: "Schneidet Haare", Detail: "Friseure beraten Kunden.", Embedding: mk("Schneidet Haare")},
			{Label: "Koch/Köchin", Description: "Kocht Speisen", Detail: "Köche arbeiten in Küchen.", Embedding: mk("Kocht Speisen")},
			{Label: "Bäcker/Bäckerin", Description: "Backt Brot", Detail: "Bäcker backen nachts.", Embedding: mk("Backt Brot")},
		},
	}
}

func germanCanvas() string {
	return "Kundensegmente:\nFamilien und Berufstätige.\n" +
		"Wertangebote:\nIndividuelle Beratung.\n" +
		"Kundenbeziehungen:\nStammkundenpflege.\n" +
		"Kanäle:\nLadengeschäft und Online-Buchung.\n" +
		"Einnahmequellen:\nDienstleistungen und Produkte.\n" +
		"Schlüsselressourcen:\nQualifiziertes Personal.\n" +
		"Schlüsselaktivitäten:\nHaarschnitte und Styling.\n" +
		"Schlüsselpartner:\nProduktlieferanten.\n" +
		"Kostenstruktur:\nMiete und Gehälter."
}

func TestRun_CompoundLabelReconciled(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	cat := fixtureCatalog(emb)
	gen := &llm.ScriptedGenerator{
		Responses: []string{
			"Friseur\nHandwerkliches Geschick und Kundenorientierung.",
			germanCanvas(),
		},
	}

	p := New(&staticSource{cat: cat}, emb, gen, 3, nil)
	sections, err := p.Run(context.Background(), "Ich möchte einen Friseursalon eröffnen", models.LangGerman)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 9 {
		t.Fatalf("sections = %d, want 9", len(sections))
	}
	if sections["Kundensegmente"] != "Familien und Berufstätige." {
		t.Errorf("Kundensegmente = %q", sections["Kundensegmente"])
	}

	// The model answered with the bare part; the canvas prompt must carry
	// the full compound label and its catalog detail.
	if len(gen.Prompts) != 2 {
		t.Fatalf("generator calls = %d, want 2", len(gen.Prompts))
	}
	if !strings.Contains(gen.Prompts[1], "'Friseur/Friseurin'") {
		t.Error("canvas prompt missing reconciled compound label")
	}
	if !strings.Contains(gen.Prompts[1], "Friseure beraten Kunden.") {
		t.Error("canvas prompt missing catalog detail")
	}
}

func TestRun_SentinelProducesNoMatchNarrative(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	gen := &llm.ScriptedGenerator{
		Responses: []string{
			"nein\nAllgemeine unternehmerische Fähigkeiten.",
			germanCanvas(),
		},
	}

	p := New(&staticSource{cat: fixtureCatalog(emb)}, emb, gen, 3, nil)
	_, err := p.Run(context.Background(), "etwas völlig Neues", models.LangGerman)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.Prompts[1], "keine genaue Berufsübereinstimmung") {
		t.Error("canvas prompt not built from the no-match narrative")
	}
}

func TestRun_CandidateListInResolverPrompt(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	gen := &llm.ScriptedGenerator{
		Responses: []string{"nein\nskills", germanCanvas()},
	}

	p := New(&staticSource{cat: fixtureCatalog(emb)}, emb, gen, 2, nil)
	if _, err := p.Run(context.Background(), "idee", models.LangGerman); err != nil {
		t.Fatal(err)
	}

	joined := gen.Prompts[0]
	count := 0
	for _, label := range []string{"Friseur/Friseurin", "Koch/Köchin", "Bäcker/Bäckerin"} {
		if strings.Contains(joined, label) {
			count++
		}
	}
	if count != 2 {
		t.Errorf("resolver prompt carries %d candidate labels, want top 2", count)
	}
}

func TestRun_CatalogError(t *testing.T) {
	p := New(&staticSource{err: catalog.ErrUnavailable}, embedding.NewMockEmbedder(8), &llm.ScriptedGenerator{}, 3, nil)
	_, err := p.Run(context.Background(), "idea", models.LangGerman)
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("err = %v", err)
	}
}

func TestRun_GeneratorError(t *testing.T) {
	emb := embedding.NewMockEmbedder(32)
	gen := &llm.ScriptedGenerator{Errs: []error{llm.ErrGeneration}}

	p := New(&staticSource{cat: fixtureCatalog(emb)}, emb, gen, 3, nil)
	_, err := p.Run(context.Background(), "idee", models.LangGerman)
	if !errors.Is(err, llm.ErrGeneration) {
		t.Fatalf("err = %v", err)
	}
}
