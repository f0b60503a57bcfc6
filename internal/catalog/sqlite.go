package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/launchpath/canvas/internal/models"
)

// DatasetFile returns the dataset filename for a language, e.g. "occupations_de.db".
func DatasetFile(lang models.Language) string {
	return fmt.Sprintf("occupations_%s.db", lang)
}

// Load reads the occupation dataset for lang from dir.
//
// Fails with models.ErrUnsupportedLanguage for unknown codes and with a
// wrapped ErrUnavailable when the dataset file is missing or unreadable.
// Records come back in rowid order so ranking ties break by catalog order.
func Load(ctx context.Context, dir string, lang models.Language) (*Catalog, error) {
	if !lang.Valid() {
		_, err := models.ParseLanguage(string(lang))
		return nil, err
	}

	path := filepath.Join(dir, DatasetFile(lang))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}

	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrUnavailable, path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT label, description, detail, embedding FROM occupations ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", ErrUnavailable, path, err)
	}
	defer rows.Close()

	cat := &Catalog{Language: lang}
	for rows.Next() {
		var rec models.Occupation
		var blob []byte
		if err := rows.Scan(&rec.Label, &rec.Description, &rec.Detail, &blob); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %v", ErrUnavailable, path, err)
		}
		rec.Embedding, err = DecodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("%w: record %q: %v", ErrUnavailable, rec.Label, err)
		}
		cat.Records = append(cat.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}
	return cat, nil
}
