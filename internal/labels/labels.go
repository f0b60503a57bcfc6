// Package labels reconciles compound occupation labels with their synonym parts.
//
// Catalog labels can be compounds of slash-separated synonymous forms, typically
// gendered variants ("Friseur/Friseurin"). A generative model asked to pick one
// of them tends to answer with a single part ("Friseur"), which is not a catalog
// label. The index built here maps every part back to the full compound so the
// answer can be resolved for catalog lookup.
package labels

import "strings"

// Delimiter separates synonymous forms within one compound label.
const Delimiter = "/"

// Index maps an individual synonym part to the full compound label it came from.
type Index map[string]string

// BuildIndex builds the part-to-label index for the given candidate labels.
// Parts are trimmed of surrounding whitespace. When two candidates share a part
// the later candidate wins; parts are expected to be unique within one
// candidate set, so this is a deliberate, tested tie-break rather than a merge.
func BuildIndex(candidateLabels []string) Index {
	idx := make(Index)
	for _, label := range candidateLabels {
		for _, part := range strings.Split(label, Delimiter) {
			idx[strings.TrimSpace(part)] = label
		}
	}
	return idx
}

// Canonical returns the full compound label for a synonym part, if known.
func (idx Index) Canonical(part string) (string, bool) {
	label, ok := idx[part]
	return label, ok
}
