package extract

import "context"

// Extractor port (interface for rendered-page text extraction).
// A malformed URL is not rejected here; it surfaces as a navigation error.
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}
