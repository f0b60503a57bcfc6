package catalog

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/launchpath/canvas/internal/models"
)

func writeDataset(t *testing.T, dir string, lang models.Language, recs []models.Occupation) {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(dir, DatasetFile(lang)))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE occupations (
		label TEXT NOT NULL,
		description TEXT NOT NULL,
		detail TEXT NOT NULL,
		embedding BLOB NOT NULL
	)`)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range recs {
		_, err = db.Exec(
			"INSERT INTO occupations (label, description, detail, embedding) VALUES (?, ?, ?, ?)",
			r.Label, r.Description, r.Detail, EncodeEmbedding(r.Embedding))
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := []models.Occupation{
		{Label: "Friseur/Friseurin", Description: "Schneidet Haare", Detail: "Langer Text", Embedding: []float32{0.1, 0.2, 0.3}},
		{Label: "Koch/Köchin", Description: "Kocht Speisen", Detail: "Noch mehr Text", Embedding: []float32{-0.5, 0, 1}},
	}
	writeDataset(t, dir, models.LangGerman, want)

	cat, err := Load(context.Background(), dir, models.LangGerman)
	if err != nil {
		t.Fatal(err)
	}
	if cat.Size() != len(want) {
		t.Fatalf("size = %d, want %d", cat.Size(), len(want))
	}
	for i, rec := range cat.Records {
		if rec.Label != want[i].Label || rec.Description != want[i].Description || rec.Detail != want[i].Detail {
			t.Errorf("record %d = %+v", i, rec)
		}
		if len(rec.Embedding) != len(want[i].Embedding) {
			t.Fatalf("record %d embedding length = %d", i, len(rec.Embedding))
		}
		for j := range rec.Embedding {
			if rec.Embedding[j] != want[i].Embedding[j] {
				t.Errorf("record %d embedding[%d] = %f, want %f", i, j, rec.Embedding[j], want[i].Embedding[j])
			}
		}
	}
}

func TestLoad_MissingDataset(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir(), models.LangFrench)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestLoad_UnsupportedLanguage(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir(), models.Language("pt"))
	if !errors.Is(err, models.ErrUnsupportedLanguage) {
		t.Fatalf("err = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestDetailFor(t *testing.T) {
	cat := &Catalog{
		Language: models.LangEnglish,
		Records: []models.Occupation{
			{Label: "Baker", Detail: "bakes bread"},
			{Label: "baker", Detail: "duplicate"},
		},
	}

	detail, ok := cat.DetailFor("baker")
	if !ok || detail != "bakes bread" {
		t.Errorf("DetailFor(baker) = %q, %v", detail, ok)
	}
	if _, ok := cat.DetailFor("Plumber"); ok {
		t.Error("unknown label reported ok")
	}
}

func TestEmbeddingCodec(t *testing.T) {
	v := []float32{0, 1.5, -2.25, 3e-7}
	got, err := DecodeEmbedding(EncodeEmbedding(v))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(v) {
		t.Fatalf("len = %d", len(got))
	}
	for i := range v {
		if got[i] != v[i] {
			t.Errorf("component %d = %f, want %f", i, got[i], v[i])
		}
	}

	if _, err := DecodeEmbedding([]byte{1, 2, 3}); err == nil {
		t.Error("truncated blob decoded without error")
	}
}

func TestCache_GetAndInvalidate(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, models.LangEnglish, []models.Occupation{
		{Label: "Baker", Description: "bakes", Detail: "d", Embedding: []float32{1}},
	})

	cache := NewCache(dir, nil)
	ctx := context.Background()

	first, err := cache.Get(ctx, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.Get(ctx, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second Get did not hit the cache")
	}

	cache.Invalidate(models.LangEnglish)
	third, err := cache.Get(ctx, models.LangEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if third == first {
		t.Error("Get after Invalidate returned the stale catalog")
	}
}

func TestCache_MissingDataset(t *testing.T) {
	cache := NewCache(t.TempDir(), nil)
	if _, err := cache.Get(context.Background(), models.LangItalian); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestLanguageFromDataset(t *testing.T) {
	lang, ok := languageFromDataset("occupations_nl.db")
	if !ok || lang != models.LangDutch {
		t.Errorf("got %q, %v", lang, ok)
	}
	if _, ok := languageFromDataset("occupations_pt.db"); ok {
		t.Error("unsupported code accepted")
	}
	if _, ok := languageFromDataset("notes.txt"); ok {
		t.Error("unrelated file accepted")
	}
}
