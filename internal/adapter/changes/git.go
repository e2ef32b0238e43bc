package changes

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"leethub-sync/internal/domain/model"
	"leethub-sync/internal/domain/ports"
	apperrors "leethub-sync/internal/errors"
	"leethub-sync/internal/leethub"
)

// GitSource reads the HEAD commit of a local repository with the git CLI.
type GitSource struct {
	repoDir string
}

var _ ports.ChangeSource = (*GitSource)(nil)

// NewGitSource creates a source for the repository at repoDir.
func NewGitSource(repoDir string) *GitSource {
	if repoDir == "" {
		repoDir = "."
	}
	return &GitSource{repoDir: repoDir}
}

// Latest returns the files changed by HEAD and its full message.
func (g *GitSource) Latest(ctx context.Context) (*model.ChangeSet, error) {
	rev, err := g.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return nil, err
	}
	rev = strings.TrimSpace(rev)

	// --root lists the files of an initial commit against the empty tree.
	files, err := g.run(ctx, "diff-tree", "--no-commit-id", "--name-only", "-r", "--root", rev)
	if err != nil {
		return nil, err
	}

	msg, err := g.run(ctx, "log", "-1", "--format=%B", rev)
	if err != nil {
		return nil, err
	}

	return &model.ChangeSet{
		Revision: rev,
		Files:    leethub.ParseChangeList(files),
		Message:  strings.TrimSpace(msg),
	}, nil
}

func (g *GitSource) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoDir

	output, err := cmd.Output()
	if err != nil {
		detail := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return "", &apperrors.AppError{
			Code:    apperrors.ErrCodeChangeSource,
			Message: fmt.Sprintf("git %s failed", args[0]),
			Details: detail,
			Err:     err,
		}
	}
	return string(output), nil
}
