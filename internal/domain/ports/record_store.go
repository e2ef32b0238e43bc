package ports

import (
	"context"

	"leethub-sync/internal/domain/model"
)

// RecordStore is the remote database of solved problems, keyed by slug.
type RecordStore interface {
	// QueryBySlug returns every record whose Slug property equals slug exactly.
	QueryBySlug(ctx context.Context, slug string) ([]model.Record, error)
	// UpdateRecord marks an existing record solved and rewrites its metadata.
	UpdateRecord(ctx context.Context, id string, update model.RecordUpdate) error
	// CreateRecord adds a solved record for a new problem.
	CreateRecord(ctx context.Context, record model.NewRecord) (*model.Record, error)
}
