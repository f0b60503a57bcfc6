package models

// Occupation is one catalog record: a canonical label (possibly a compound of
// slash-separated synonymous forms), a short description, the full detail text,
// and the precomputed embedding of the description.
type Occupation struct {
	Label       string
	Description string
	Detail      string
	Embedding   []float32
}

// MatchCandidate is a ranked similarity hit against the occupation catalog.
type MatchCandidate struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}
