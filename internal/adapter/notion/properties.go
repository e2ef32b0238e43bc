package notion

import "strings"

// Notion rejects rich text content longer than this.
const maxTextLength = 2000

func richText(content string) []map[string]any {
	return []map[string]any{
		{"text": map[string]string{"content": content}},
	}
}

func selectValue(name string) map[string]any {
	return map[string]any{"select": map[string]string{"name": name}}
}

func multiSelectValue(names []string) map[string]any {
	options := make([]map[string]string, 0, len(names))
	for _, name := range names {
		options = append(options, map[string]string{"name": name})
	}
	return map[string]any{"multi_select": options}
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
