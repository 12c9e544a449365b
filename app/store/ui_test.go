package store

import (
	"testing"

	"github.com/dailydash/dailydash/app/content"
)

func TestUIStore_Defaults(t *testing.T) {
	s := NewUIStore()

	if s.SearchQuery() != "" {
		t.Errorf("Expected empty initial search query, got '%s'", s.SearchQuery())
	}
	if s.TypeFilter() != content.FilterAll {
		t.Errorf("Expected initial filter 'all', got '%s'", s.TypeFilter())
	}
	if s.Theme() != ThemeBg1 {
		t.Errorf("Expected initial theme 'bg1', got '%s'", s.Theme())
	}
	if s.SidebarOpen() {
		t.Error("Sidebar should start closed")
	}
}

func TestUIStore_SetTypeFilterRejectsUnknown(t *testing.T) {
	s := NewUIStore()

	if !s.SetTypeFilter(content.FilterMovie) {
		t.Error("Known filter should be accepted")
	}
	if s.SetTypeFilter(content.TypeFilter("podcast")) {
		t.Error("Unknown filter should be rejected")
	}
	if s.TypeFilter() != content.FilterMovie {
		t.Errorf("Rejected filter must not change state, got '%s'", s.TypeFilter())
	}
}

func TestUIStore_SetThemeRejectsUnknownToken(t *testing.T) {
	s := NewUIStore()

	if !s.SetTheme(ThemeBg3) {
		t.Error("Known theme token should be accepted")
	}
	if s.SetTheme(Theme("bg9")) {
		t.Error("Unknown theme token should be rejected")
	}
	if s.Theme() != ThemeBg3 {
		t.Errorf("Rejected token must not change state, got '%s'", s.Theme())
	}
}

func TestUIStore_SidebarToggle(t *testing.T) {
	s := NewUIStore()

	if !s.ToggleSidebar() {
		t.Error("First toggle should open the sidebar")
	}
	if s.ToggleSidebar() {
		t.Error("Second toggle should close the sidebar")
	}

	s.SetSidebarOpen(true)
	if !s.SidebarOpen() {
		t.Error("SetSidebarOpen(true) should open the sidebar")
	}
}
