// Package embedding produces vector embeddings for query text.
package embedding

import "context"

// Embedder turns text into a fixed-dimension vector suitable for cosine
// similarity against the precomputed catalog embeddings. Implementations must
// be safe for concurrent use; the service shares one embedder across requests.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
	Close() error
}
