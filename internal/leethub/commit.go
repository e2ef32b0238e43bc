package leethub

import (
	"regexp"
	"strings"

	"leethub-sync/internal/domain/model"
)

var commitPattern = regexp.MustCompile(`\[LeetHub\]\s+(.*?)\s+\|\s+Difficulty:\s+(\w+)\s+\|\s+Tags:\s+(.*)`)

// ParseCommitMessage extracts the problem metadata from a message of the form
//
//	[LeetHub] <title> | Difficulty: <word> | Tags: <tags>
//
// The template may appear anywhere in the message. ok is false when the
// template does not match, any of the three fields is empty, or the tag list
// holds no tag names.
func ParseCommitMessage(msg string) (meta model.CommitMetadata, ok bool) {
	match := commitPattern.FindStringSubmatch(msg)
	if match == nil {
		return model.CommitMetadata{}, false
	}

	meta = model.CommitMetadata{
		Title:      strings.TrimSpace(match[1]),
		Difficulty: strings.TrimSpace(match[2]),
		Tags:       strings.TrimSpace(match[3]),
	}
	if meta.Title == "" || meta.Difficulty == "" || len(SplitTags(meta.Tags)) == 0 {
		return model.CommitMetadata{}, false
	}
	return meta, true
}

// SplitTags splits a comma-separated tag list into trimmed, non-empty tags.
func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
