// Package catalog loads and caches the per-language occupation datasets.
package catalog

import (
	"errors"
	"strings"

	"github.com/launchpath/canvas/internal/models"
)

// ErrUnavailable wraps any failure to read a dataset for a supported language.
var ErrUnavailable = errors.New("catalog unavailable")

// Catalog is the occupation dataset for one language, immutable after load.
// Records keep their on-disk order; similarity ranking relies on it for a
// stable tie-break.
type Catalog struct {
	Language models.Language
	Records  []models.Occupation
}

// Size returns the number of occupation records.
func (c *Catalog) Size() int {
	return len(c.Records)
}

// DetailFor returns the full detail text for an occupation, matched by exact
// case-insensitive label. When several records carry the same label the first
// one wins. Missing occupations report ok=false with an empty detail; callers
// treat that as "no detail available", never as a failure.
func (c *Catalog) DetailFor(label string) (string, bool) {
	for i := range c.Records {
		if strings.EqualFold(c.Records[i].Label, label) {
			return c.Records[i].Detail, true
		}
	}
	return "", false
}
