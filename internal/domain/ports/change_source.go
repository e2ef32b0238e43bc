package ports

import (
	"context"

	"leethub-sync/internal/domain/model"
)

// ChangeSource supplies the commit to synchronize.
type ChangeSource interface {
	Latest(ctx context.Context) (*model.ChangeSet, error)
}
