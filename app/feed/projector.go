// Package feed derives the rendered content lists from stored state plus the
// active filters. Projections are pure: plain data in, a fresh slice out, no
// mutation of inputs, byte-identical output for identical inputs.
package feed

import (
	"github.com/dailydash/dailydash/app/content"
)

const trendingPerSource = 6

// Project derives the main feed view. The order sequence is resolved against
// the content map first, silently dropping stale ids, then the type filter
// and the search query are applied in that order.
func Project(contentByID map[string]content.NormalizedContent, order []string,
	typeFilter content.TypeFilter, query string) []content.NormalizedContent {

	matcher := newQueryMatcher(query)

	projected := make([]content.NormalizedContent, 0, len(order))
	for _, id := range order {
		item, ok := contentByID[id]
		if !ok {
			continue
		}
		if typeFilter != content.FilterAll && content.TypeFilter(item.Type) != typeFilter {
			continue
		}
		if !matcher.matches(item.Title, item.Description) {
			continue
		}
		projected = append(projected, item)
	}
	return projected
}

// ProjectFavorites derives the favorites view. It starts from the full merged
// content set in merge order rather than the user-ordered feed, keeps only
// favorited ids, then applies the same search predicate as the main feed.
func ProjectFavorites(merged []content.NormalizedContent, favoriteIDs []string,
	query string) []content.NormalizedContent {

	favorites := make(map[string]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = true
	}

	matcher := newQueryMatcher(query)

	projected := make([]content.NormalizedContent, 0, len(favoriteIDs))
	for _, item := range merged {
		if !favorites[item.ID] {
			continue
		}
		if !matcher.matches(item.Title, item.Description) {
			continue
		}
		projected = append(projected, item)
	}
	return projected
}

// ProjectTrending derives the trending view: the first six news items and the
// first six trending movies, filtered by the search query.
func ProjectTrending(news, trendingMovies []content.NormalizedContent,
	query string) []content.NormalizedContent {

	matcher := newQueryMatcher(query)

	combined := make([]content.NormalizedContent, 0, 2*trendingPerSource)
	combined = append(combined, head(news, trendingPerSource)...)
	combined = append(combined, head(trendingMovies, trendingPerSource)...)

	projected := make([]content.NormalizedContent, 0, len(combined))
	for _, item := range combined {
		if !matcher.matches(item.Title, item.Description) {
			continue
		}
		projected = append(projected, item)
	}
	return projected
}

func head(items []content.NormalizedContent, n int) []content.NormalizedContent {
	if len(items) > n {
		return items[:n]
	}
	return items
}
