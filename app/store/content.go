package store

import (
	"sync"

	"github.com/dailydash/dailydash/app/content"
)

// ContentStore holds the merged canonical content set and the authoritative
// display order. Content is append/overwrite only; the order is mutated only
// by explicit user reordering or restore-from-persistence, never by merges.
type ContentStore struct {
	mu         sync.RWMutex
	allContent map[string]content.NormalizedContent
	feedOrder  []string
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		allContent: make(map[string]content.NormalizedContent),
	}
}

// SetContent merges items into the content set, upserting by id. The feed
// order is initialized from the item order only when it is currently empty:
// an existing custom or persisted order always wins over freshly fetched
// content ordering, so new ids are not appended to a customized order.
func (s *ContentStore) SetContent(items []content.NormalizedContent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.allContent[item.ID] = item
	}

	if len(s.feedOrder) == 0 {
		order := make([]string, 0, len(items))
		for _, item := range items {
			order = append(order, item.ID)
		}
		s.feedOrder = order
	}
}

// ReorderFeed replaces the feed order wholesale. The caller supplies the
// permutation; ids are not validated against stored content because the
// projector tolerates stale references.
func (s *ContentStore) ReorderFeed(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedOrder = cloneStrings(ids)
}

// LoadFeedOrder restores a persisted order. Mechanically identical to
// ReorderFeed; kept as a distinct operation because it originates from
// persistence rather than a user drag.
func (s *ContentStore) LoadFeedOrder(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedOrder = cloneStrings(ids)
}

// Snapshot returns copies of the content map and feed order, safe to project
// from without holding the store lock.
func (s *ContentStore) Snapshot() (map[string]content.NormalizedContent, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[string]content.NormalizedContent, len(s.allContent))
	for id, item := range s.allContent {
		byID[id] = item
	}
	return byID, cloneStrings(s.feedOrder)
}

// Get returns the content item for id, if present.
func (s *ContentStore) Get(id string) (content.NormalizedContent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.allContent[id]
	return item, ok
}

// FeedOrder returns a copy of the current display order.
func (s *ContentStore) FeedOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrings(s.feedOrder)
}

// Len returns the number of stored content items.
func (s *ContentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.allContent)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
