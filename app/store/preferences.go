package store

import "sync"

// Preferences holds the category subscriptions that parameterize which raw
// provider data is fetched and merged. SocialCategories is reserved: no live
// query consumes it yet.
type Preferences struct {
	NewsCategories   []string `json:"newsCategories"`
	SocialCategories []string `json:"socialCategories"`
}

// DefaultPreferences returns the initial category subscriptions used when no
// persisted snapshot exists.
func DefaultPreferences() Preferences {
	return Preferences{
		NewsCategories:   []string{"technology", "business", "entertainment"},
		SocialCategories: []string{"trending", "following"},
	}
}

// PreferencesStore holds the current user preferences. An empty news
// category set is legal and yields no news content.
type PreferencesStore struct {
	mu    sync.RWMutex
	prefs Preferences
}

func NewPreferencesStore() *PreferencesStore {
	return &PreferencesStore{prefs: DefaultPreferences()}
}

func (s *PreferencesStore) SetNewsCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.NewsCategories = cloneStrings(categories)
}

func (s *PreferencesStore) SetSocialCategories(categories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.SocialCategories = cloneStrings(categories)
}

// Load replaces the preferences wholesale, used when restoring persisted
// state.
func (s *PreferencesStore) Load(prefs Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = Preferences{
		NewsCategories:   cloneStrings(prefs.NewsCategories),
		SocialCategories: cloneStrings(prefs.SocialCategories),
	}
}

// Get returns a copy of the current preferences.
func (s *PreferencesStore) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Preferences{
		NewsCategories:   cloneStrings(s.prefs.NewsCategories),
		SocialCategories: cloneStrings(s.prefs.SocialCategories),
	}
}
