// Package changes provides the commit inputs of a sync run: the CI
// environment or the local git repository.
package changes

import (
	"context"

	"leethub-sync/internal/domain/model"
	"leethub-sync/internal/domain/ports"
	"leethub-sync/internal/leethub"
)

// EnvSource serves a change set captured from the environment at startup.
type EnvSource struct {
	files   []string
	message string
}

var _ ports.ChangeSource = (*EnvSource)(nil)

// NewEnvSource builds a source from a newline-separated file list and a commit message.
func NewEnvSource(changedFiles, message string) *EnvSource {
	return &EnvSource{
		files:   leethub.ParseChangeList(changedFiles),
		message: message,
	}
}

// Latest returns the captured change set. It never fails.
func (s *EnvSource) Latest(context.Context) (*model.ChangeSet, error) {
	files := make([]string, len(s.files))
	copy(files, s.files)
	return &model.ChangeSet{Files: files, Message: s.message}, nil
}
