package analysis

import "context"

// Client port for the completion service. Faults are returned in-band as
// the Record failure variant, never as an error.
type Client interface {
	Analyze(ctx context.Context, pageText string) Record
}

// Repository port for the report store. Save is an unconditional append;
// re-analyzing a URL accumulates documents.
type Repository interface {
	Save(ctx context.Context, r *Report) error
	Latest(ctx context.Context, limit int) ([]*Report, error)
}

// ArtifactStore port for archiving raw analysis inputs and outputs.
type ArtifactStore interface {
	PutText(ctx context.Context, key, content, contentType string) (string, error)
}
