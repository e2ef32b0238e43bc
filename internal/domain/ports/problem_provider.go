package ports

import (
	"context"

	"leethub-sync/internal/domain/model"
)

// ProblemProvider looks up LeetCode problem metadata by slug.
type ProblemProvider interface {
	GetProblem(ctx context.Context, slug string) (*model.Problem, error)
}
