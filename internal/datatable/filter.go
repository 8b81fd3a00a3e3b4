package datatable

import "strings"

// Filter returns the rows matching query, in input order. A row matches when
// query is empty or any string or number field contains it, ignoring case.
// Nested values, nil and bools are never scanned.
func Filter(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}
	needle := strings.ToLower(query)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if Matches(row, needle) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Matches reports whether row matches the lower-cased needle.
func Matches(row Row, needle string) bool {
	if needle == "" {
		return true
	}
	for _, value := range row {
		text, ok := searchableString(value)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(text), needle) {
			return true
		}
	}
	return false
}
