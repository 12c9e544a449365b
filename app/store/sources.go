package store

import (
	"sync"

	"github.com/dailydash/dailydash/app/content"
)

// SourceCache keeps the latest normalized batch per provider. The favorites
// and trending views project from these batches in merge order rather than
// from the user-ordered feed, so the raw per-source results stay available
// independent of feed ordering. Social content is static and set once.
type SourceCache struct {
	mu       sync.RWMutex
	news     []content.NormalizedContent
	movies   []content.NormalizedContent
	trending []content.NormalizedContent
	social   []content.NormalizedContent
}

func NewSourceCache() *SourceCache {
	return &SourceCache{social: content.SocialPosts()}
}

func (c *SourceCache) SetNews(items []content.NormalizedContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.news = cloneItems(items)
}

func (c *SourceCache) SetMovies(items []content.NormalizedContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movies = cloneItems(items)
}

func (c *SourceCache) SetTrending(items []content.NormalizedContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trending = cloneItems(items)
}

func (c *SourceCache) News() []content.NormalizedContent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneItems(c.news)
}

func (c *SourceCache) Trending() []content.NormalizedContent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneItems(c.trending)
}

func (c *SourceCache) Social() []content.NormalizedContent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneItems(c.social)
}

// Merged returns the full content set in merge order: news, then movies,
// then social. This is the base sequence for the favorites view and the
// default feed order on first merge.
func (c *SourceCache) Merged() []content.NormalizedContent {
	c.mu.RLock()
	defer c.mu.RUnlock()

	merged := make([]content.NormalizedContent, 0, len(c.news)+len(c.movies)+len(c.social))
	merged = append(merged, c.news...)
	merged = append(merged, c.movies...)
	merged = append(merged, c.social...)
	return merged
}

func cloneItems(in []content.NormalizedContent) []content.NormalizedContent {
	if in == nil {
		return nil
	}
	out := make([]content.NormalizedContent, len(in))
	copy(out, in)
	return out
}
