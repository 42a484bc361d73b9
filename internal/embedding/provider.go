// Package embedding converts text into fixed-length vectors via an external
// embedding service.
package embedding

import "context"

// Dim is the vector length produced by the configured embedding model.
// text-embedding-004 emits 768 dimensions; the site_pages column must match.
const Dim = 768

// Provider generates one embedding per call. Failures are hard errors; there
// is no caching, batching, or retry at this layer.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
