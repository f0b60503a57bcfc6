// Package pipeline runs a business idea through the full canvas flow:
// candidate matching, occupation resolution, narrative composition, canvas
// generation and section extraction.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/launchpath/canvas/internal/catalog"
	"github.com/launchpath/canvas/internal/composer"
	"github.com/launchpath/canvas/internal/embedding"
	"github.com/launchpath/canvas/internal/extractor"
	"github.com/launchpath/canvas/internal/labels"
	"github.com/launchpath/canvas/internal/llm"
	"github.com/launchpath/canvas/internal/matcher"
	"github.com/launchpath/canvas/internal/models"
	"github.com/launchpath/canvas/internal/prompts"
	"github.com/launchpath/canvas/internal/resolver"
)

// CatalogSource provides per-language catalogs. *catalog.Cache implements it.
type CatalogSource interface {
	Get(ctx context.Context, lang models.Language) (*catalog.Catalog, error)
}

// Pipeline holds the collaborators for one deployment.
type Pipeline struct {
	Catalogs  CatalogSource
	Embedder  embedding.Embedder
	Generator llm.TextGenerator
	TopK      int
	Logger    *zap.Logger
}

// New builds a pipeline with a nop logger when none is given.
func New(catalogs CatalogSource, emb embedding.Embedder, gen llm.TextGenerator, topK int, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		Catalogs:  catalogs,
		Embedder:  emb,
		Generator: gen,
		TopK:      topK,
		Logger:    logger,
	}
}

// Run produces the canvas sections for a business idea in the given language.
func (p *Pipeline) Run(ctx context.Context, idea string, lang models.Language) (map[string]string, error) {
	log := p.Logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("language", string(lang)))

	cat, err := p.Catalogs.Get(ctx, lang)
	if err != nil {
		return nil, err
	}

	candidates, err := matcher.TopMatches(ctx, cat, p.Embedder, idea, p.TopK)
	if err != nil {
		return nil, fmt.Errorf("match occupations: %w", err)
	}
	candidateLabels := make([]string, len(candidates))
	for i, c := range candidates {
		candidateLabels[i] = c.Label
	}
	log.Info("candidates selected", zap.Strings("labels", candidateLabels))

	res, err := resolver.Resolve(ctx, p.Generator, lang, idea, strings.Join(candidateLabels, ", "))
	if err != nil {
		return nil, fmt.Errorf("resolve occupation: %w", err)
	}

	match := p.reconcile(res.Match, lang, candidateLabels)
	log.Info("occupation resolved",
		zap.String("raw_match", res.Match),
		zap.String("match", match))

	narrative, err := composer.Compose(cat, idea, match, res.Skills, candidateLabels)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.CanvasPrompt(lang, narrative)
	if err != nil {
		return nil, err
	}
	canvasText, err := p.Generator.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate canvas: %w", err)
	}

	sections, err := extractor.Extract(canvasText, lang)
	if err != nil {
		return nil, err
	}
	log.Info("canvas generated", zap.Int("sections", len(sections)))
	return sections, nil
}

// reconcile maps a single synonym part the model answered ("Friseur") back to
// the full compound candidate label ("Friseur/Friseurin"). Sentinel and empty
// answers pass through untouched.
func (p *Pipeline) reconcile(match string, lang models.Language, candidateLabels []string) string {
	if match == "" || strings.EqualFold(match, prompts.NoMatchSentinel(lang)) {
		return match
	}
	if full, ok := labels.BuildIndex(candidateLabels).Canonical(match); ok {
		return full
	}
	return match
}
