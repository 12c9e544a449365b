package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dailydash/dailydash/app/content"
	"github.com/dailydash/dailydash/app/providers"
	"github.com/dailydash/dailydash/app/store"
)

var _ TaskInterface = (*RefreshContentTask)(nil)

// RefreshContentTask fetches the news and popular movie batches, merges them
// with the static social posts and pushes the result into the content store.
// A single failing source is logged and skipped; the task errors only when
// every attempted source fails, so the dashboard keeps whatever subset of
// content is reachable.
type RefreshContentTask struct {
	Task
	newsClient   NewsFetcher
	movieClient  MovieFetcher
	feedClient   SourceFetcher
	sources      []providers.Source
	sourceCache  *store.SourceCache
	contentStore *store.ContentStore
	preferences  *store.PreferencesStore
}

func NewRefreshContentTask(newsClient NewsFetcher, movieClient MovieFetcher,
	feedClient SourceFetcher, sources []providers.Source, sourceCache *store.SourceCache,
	contentStore *store.ContentStore, preferences *store.PreferencesStore) *RefreshContentTask {
	return &RefreshContentTask{
		Task:         NewTask(TaskTypeRefreshContent),
		newsClient:   newsClient,
		movieClient:  movieClient,
		feedClient:   feedClient,
		sources:      sources,
		sourceCache:  sourceCache,
		contentStore: contentStore,
		preferences:  preferences,
	}
}

func (t *RefreshContentTask) Execute(ctx context.Context) error {
	attempted := 0
	failed := 0

	var news []content.NormalizedContent

	if t.newsClient.IsConfigured() {
		categories := t.preferences.Get().NewsCategories
		if len(categories) > 0 {
			attempted++
			items, err := t.newsClient.Fetch(ctx, categories)
			if err != nil {
				failed++
				slog.Warn("News fetch failed, skipping", "error", err)
			} else {
				news = append(news, items...)
			}
		}
	}

	for _, source := range t.sources {
		attempted++
		items, err := t.feedClient.Fetch(ctx, source)
		if err != nil {
			failed++
			slog.Warn("RSS source fetch failed, skipping", "source", source.URL, "error", err)
			continue
		}
		news = append(news, items...)
	}

	var movies []content.NormalizedContent

	if t.movieClient.IsConfigured() {
		attempted++
		items, err := t.movieClient.Popular(ctx)
		if err != nil {
			failed++
			slog.Warn("Popular movies fetch failed, skipping", "error", err)
		} else {
			movies = items
		}
	}

	if attempted > 0 && failed == attempted {
		return fmt.Errorf("all %d content sources failed", attempted)
	}

	t.sourceCache.SetNews(news)
	t.sourceCache.SetMovies(movies)
	t.contentStore.SetContent(t.sourceCache.Merged())

	slog.Debug("Content refresh completed", "news", len(news), "movies", len(movies),
		"sources_attempted", attempted, "sources_failed", failed, "duration", t.GetDuration().String())

	return nil
}
