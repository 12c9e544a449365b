package store

import "testing"

func TestPreferencesStore_Defaults(t *testing.T) {
	s := NewPreferencesStore()

	prefs := s.Get()
	expected := []string{"technology", "business", "entertainment"}
	if len(prefs.NewsCategories) != len(expected) {
		t.Fatalf("Expected default news categories %v, got %v", expected, prefs.NewsCategories)
	}
	for i := range expected {
		if prefs.NewsCategories[i] != expected[i] {
			t.Errorf("Expected default news categories %v, got %v", expected, prefs.NewsCategories)
			break
		}
	}
	if len(prefs.SocialCategories) != 2 {
		t.Errorf("Expected 2 default social categories, got %v", prefs.SocialCategories)
	}
}

func TestPreferencesStore_SetAndLoad(t *testing.T) {
	s := NewPreferencesStore()

	s.SetNewsCategories([]string{"science"})
	if got := s.Get().NewsCategories; len(got) != 1 || got[0] != "science" {
		t.Errorf("Expected [science], got %v", got)
	}

	s.Load(Preferences{
		NewsCategories:   []string{"sports"},
		SocialCategories: []string{"following"},
	})

	prefs := s.Get()
	if len(prefs.NewsCategories) != 1 || prefs.NewsCategories[0] != "sports" {
		t.Errorf("Load should replace news categories, got %v", prefs.NewsCategories)
	}
	if len(prefs.SocialCategories) != 1 || prefs.SocialCategories[0] != "following" {
		t.Errorf("Load should replace social categories, got %v", prefs.SocialCategories)
	}
}

func TestPreferencesStore_EmptyCategoriesAreLegal(t *testing.T) {
	s := NewPreferencesStore()

	s.SetNewsCategories(nil)

	if got := s.Get().NewsCategories; len(got) != 0 {
		t.Errorf("Empty news category set is legal, got %v", got)
	}
}
