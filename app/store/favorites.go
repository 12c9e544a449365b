package store

import "sync"

// FavoritesStore maintains the set of favorited content ids in insertion
// order. Membership is independent of the content store: favoriting an id
// that no longer resolves to content is legal and simply never rendered.
type FavoritesStore struct {
	mu      sync.RWMutex
	ids     []string
	present map[string]bool
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{
		present: make(map[string]bool),
	}
}

// Toggle flips membership for id and reports whether it is a favorite
// afterwards.
func (s *FavoritesStore) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.present[id] {
		delete(s.present, id)
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
		return false
	}

	s.present[id] = true
	s.ids = append(s.ids, id)
	return true
}

// Load replaces the favorites set wholesale, used when restoring persisted
// state. Duplicate ids in the input collapse to one entry.
func (s *FavoritesStore) Load(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = s.ids[:0]
	s.present = make(map[string]bool, len(ids))
	for _, id := range ids {
		if s.present[id] {
			continue
		}
		s.present[id] = true
		s.ids = append(s.ids, id)
	}
}

// IDs returns a copy of the favorite ids in insertion order.
func (s *FavoritesStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStrings(s.ids)
}

// IsFavorite reports membership for id.
func (s *FavoritesStore) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present[id]
}

// Len returns the number of favorited ids.
func (s *FavoritesStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
