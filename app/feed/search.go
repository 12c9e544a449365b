package feed

import (
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// queryMatcher performs case-insensitive substring matching of a search
// query against item display text.
type queryMatcher struct {
	pattern *search.Pattern
}

func newQueryMatcher(query string) *queryMatcher {
	if query == "" {
		return &queryMatcher{}
	}
	matcher := search.New(language.English, search.IgnoreCase)
	return &queryMatcher{pattern: matcher.CompileString(query)}
}

// matches reports whether the query occurs in the item title or description.
// An empty query matches everything.
func (m *queryMatcher) matches(title, description string) bool {
	if m.pattern == nil {
		return true
	}
	if start, _ := m.pattern.IndexString(title); start >= 0 {
		return true
	}
	if start, _ := m.pattern.IndexString(description); start >= 0 {
		return true
	}
	return false
}
