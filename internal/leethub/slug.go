// Package leethub holds the pure string transformations applied to a LeetHub
// commit: deriving problem slugs from file paths, filtering the change list
// and parsing the commit message.
package leethub

import (
	"path"
	"regexp"
	"sort"
	"strings"
)

var (
	numericPrefixPattern = regexp.MustCompile(`^\d+[.\-_\s]*`)
	separatorPattern     = regexp.MustCompile(`[\s_]+`)
	disallowedPattern    = regexp.MustCompile(`[^a-z0-9\-]`)
	hyphenRunPattern     = regexp.MustCompile(`-+`)
)

// DeriveSlug maps a changed file path to a problem slug. The parent directory
// name is preferred; files at the repository root fall back to their base name
// without extension. An empty result means the path carries no usable slug.
func DeriveSlug(p string) string {
	dir := path.Base(path.Dir(p))
	candidate := dir
	if dir == "" || dir == "." || dir == "/" {
		base := path.Base(p)
		candidate = strings.TrimSuffix(base, path.Ext(base))
	}

	candidate = numericPrefixPattern.ReplaceAllString(candidate, "")
	slug := strings.ToLower(candidate)
	slug = separatorPattern.ReplaceAllString(slug, "-")
	slug = disallowedPattern.ReplaceAllString(slug, "")
	slug = hyphenRunPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// CollectSlugs derives slugs for every path and returns the distinct,
// non-empty ones in lexicographic order.
func CollectSlugs(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if slug := DeriveSlug(p); slug != "" {
			seen[slug] = struct{}{}
		}
	}

	slugs := make([]string, 0, len(seen))
	for slug := range seen {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

var smallWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "and": {}, "to": {},
	"in": {}, "on": {}, "for": {}, "with": {}, "by": {}, "or": {},
}

// TitleFromSlug turns "best-time-to-buy-and-sell-stock" into
// "Best Time to Buy and Sell Stock".
func TitleFromSlug(slug string) string {
	if slug == "" {
		return ""
	}

	words := strings.Split(slug, "-")
	for i, w := range words {
		if _, small := smallWords[w]; i > 0 && small {
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
