package search

import "strings"

const summaryLimit = 100

// normalize lowercases and trims a query before matching.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// matchesField reports whether the normalized query is contained in the
// field, case-insensitively. An empty query matches every field.
func matchesField(query, field string) bool {
	return strings.Contains(strings.ToLower(field), query)
}

// matchesTitle applies bidirectional containment: the query may be a
// substring of the title, or the title a substring of the query. The
// second direction lets "onde está a certidão de nascimento" find a
// document titled "certidão de nascimento". Empty titles only match in
// the query-contains-field direction, never the reverse.
func matchesTitle(query, title string) bool {
	t := strings.ToLower(title)
	if strings.Contains(t, query) {
		return true
	}
	return t != "" && strings.Contains(query, t)
}

// truncate shortens s to at most summaryLimit runes, appending an
// ellipsis when anything was cut.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit]) + "..."
}
