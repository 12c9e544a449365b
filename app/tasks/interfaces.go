package tasks

import (
	"context"

	"github.com/dailydash/dailydash/app/content"
	"github.com/dailydash/dailydash/app/providers"
)

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to manage background content refreshes.
// Example usage:
//
//	scheduler := NewScheduler(newsClient, movieClient, feedClient, sources, sourceCache, contentStore, preferences)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
	EnqueueRefresh() error
}

// NewsFetcher fetches news articles for a set of categories.
type NewsFetcher interface {
	IsConfigured() bool
	Fetch(ctx context.Context, categories []string) ([]content.NormalizedContent, error)
}

// MovieFetcher fetches popular and trending movie batches.
type MovieFetcher interface {
	IsConfigured() bool
	Popular(ctx context.Context) ([]content.NormalizedContent, error)
	Trending(ctx context.Context) ([]content.NormalizedContent, error)
}

// SourceFetcher fetches a single supplementary RSS source.
type SourceFetcher interface {
	Fetch(ctx context.Context, source providers.Source) ([]content.NormalizedContent, error)
}
