package product

import (
	"strings"
)

// normalizeHeader turns a raw column name into a lookup key: lower-cased,
// spaces and hyphens become underscores, parentheses and dots are stripped.
// "Body (HTML)" -> "body_html", "Option1 Name" -> "option1_name".
func normalizeHeader(h string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	h = strings.ToLower(h)
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range h {
		switch r {
		case ' ', '-':
			b.WriteRune('_')
		case '(', ')', '.':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "_")
}

// headerIndex maps normalized column names to their cell index. With duplicate
// columns the last one wins, matching the raw colIndex behavior elsewhere.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[normalizeHeader(h)] = i
	}
	return idx
}

// rowValue returns the trimmed cell under the normalized column key, or ""
// when the column is absent or the row is short.
func rowValue(row []string, idx map[string]int, key string) string {
	ci, ok := idx[key]
	if !ok || ci < 0 || ci >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[ci])
}
