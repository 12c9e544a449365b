package store

import (
	"sync"

	"github.com/dailydash/dailydash/app/content"
)

// Theme is a visual theme token. The token set is fixed; anything else is
// rejected so a corrupt persisted value can never leak into the UI state.
type Theme string

const (
	ThemeBg1 Theme = "bg1"
	ThemeBg2 Theme = "bg2"
	ThemeBg3 Theme = "bg3"
	ThemeBg4 Theme = "bg4"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeBg1, ThemeBg2, ThemeBg3, ThemeBg4:
		return true
	}
	return false
}

// UIStore holds the ephemeral view state: committed search query, active
// content type filter, theme, and sidebar visibility. Only the theme is
// persisted.
type UIStore struct {
	mu          sync.RWMutex
	searchQuery string
	typeFilter  content.TypeFilter
	theme       Theme
	sidebarOpen bool
}

func NewUIStore() *UIStore {
	return &UIStore{
		typeFilter: content.FilterAll,
		theme:      ThemeBg1,
	}
}

// SetSearchQuery commits a search query. Debouncing of rapid input happens
// upstream; the store always applies what it is given.
func (s *UIStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

func (s *UIStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetTypeFilter sets the active content type filter. Unknown values are
// ignored.
func (s *UIStore) SetTypeFilter(filter content.TypeFilter) bool {
	if !filter.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.typeFilter = filter
	return true
}

func (s *UIStore) TypeFilter() content.TypeFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typeFilter
}

// SetTheme sets the visual theme. Unknown tokens are ignored so malformed
// persisted data degrades to the current value.
func (s *UIStore) SetTheme(theme Theme) bool {
	if !theme.Valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return true
}

func (s *UIStore) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleSidebar flips sidebar visibility and returns the new state.
func (s *UIStore) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

func (s *UIStore) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

func (s *UIStore) SidebarOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarOpen
}
