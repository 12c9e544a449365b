package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydash/dailydash/app/store"
)

var _ TaskInterface = (*RefreshTrendingTask)(nil)

// RefreshTrendingTask fetches the trending movie batch. Trending content is
// cached separately from the merged feed: the trending view projects from it
// directly and it never enters the user-ordered content set.
type RefreshTrendingTask struct {
	Task
	movieClient MovieFetcher
	sourceCache *store.SourceCache
}

func NewRefreshTrendingTask(movieClient MovieFetcher, sourceCache *store.SourceCache) *RefreshTrendingTask {
	return &RefreshTrendingTask{
		Task:        NewTask(TaskTypeRefreshTrending),
		movieClient: movieClient,
		sourceCache: sourceCache,
	}
}

func (t *RefreshTrendingTask) Execute(ctx context.Context) error {
	if !t.movieClient.IsConfigured() {
		slog.Debug("Movie client not configured, skipping trending refresh")
		return nil
	}

	items, err := t.movieClient.Trending(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch trending movies: %w", err)
	}

	t.sourceCache.SetTrending(items)

	slog.Debug("Trending refresh completed", "movies", len(items), "duration", t.GetDuration().String())

	return nil
}
