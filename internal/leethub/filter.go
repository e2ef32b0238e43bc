package leethub

import (
	"path"
	"strings"
)

// DefaultExtensions lists the solution and notes file types LeetHub pushes.
var DefaultExtensions = []string{
	".py", ".cpp", ".cc", ".c", ".java", ".js", ".ts", ".go",
	".rs", ".kt", ".swift", ".rb", ".md",
}

// DefaultSkipFiles are generic file names that never identify a problem.
var DefaultSkipFiles = []string{"readme.md", "notes.md"}

// Filter decides which changed files can identify a solved problem.
type Filter struct {
	extensions map[string]struct{}
	skip       map[string]struct{}
}

// NewFilter builds a Filter. Empty lists fall back to the defaults.
// Entries are compared case-insensitively; extensions may omit the dot.
func NewFilter(extensions, skipFiles []string) *Filter {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if len(skipFiles) == 0 {
		skipFiles = DefaultSkipFiles
	}

	f := &Filter{
		extensions: make(map[string]struct{}, len(extensions)),
		skip:       make(map[string]struct{}, len(skipFiles)),
	}
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		f.extensions[ext] = struct{}{}
	}
	for _, name := range skipFiles {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			f.skip[name] = struct{}{}
		}
	}
	return f
}

// Allow reports whether p has an allowed extension and is not a skipped file.
func (f *Filter) Allow(p string) bool {
	ext := strings.ToLower(fileExt(path.Base(p)))
	if _, ok := f.extensions[ext]; !ok {
		return false
	}
	_, skipped := f.skip[strings.ToLower(path.Base(p))]
	return !skipped
}

// fileExt returns the extension of base, ignoring leading dots so that
// dotfiles such as ".md" have none.
func fileExt(base string) string {
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return ""
	}
	return path.Ext(base)
}

// Apply returns the allowed paths, preserving input order.
func (f *Filter) Apply(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if f.Allow(p) {
			out = append(out, p)
		}
	}
	return out
}

// ParseChangeList splits a newline-separated file list, trimming entries and
// dropping blank lines.
func ParseChangeList(raw string) []string {
	lines := strings.Split(raw, "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files
}
