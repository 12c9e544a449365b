package store

import "testing"

func TestFavoritesStore_ToggleInvolution(t *testing.T) {
	s := NewFavoritesStore()

	if !s.Toggle("a") {
		t.Error("First toggle should add the id")
	}
	if !s.IsFavorite("a") {
		t.Error("Id should be a favorite after one toggle")
	}

	if s.Toggle("a") {
		t.Error("Second toggle should remove the id")
	}
	if s.IsFavorite("a") {
		t.Error("Two toggles should return membership to its original state")
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty set after involution, got %d ids", s.Len())
	}
}

func TestFavoritesStore_InsertionOrder(t *testing.T) {
	s := NewFavoritesStore()

	s.Toggle("c")
	s.Toggle("a")
	s.Toggle("b")
	s.Toggle("a") // remove
	s.Toggle("d")

	ids := s.IDs()
	expected := []string{"c", "b", "d"}
	if len(ids) != len(expected) {
		t.Fatalf("Expected %d ids, got %v", len(expected), ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Errorf("Expected order %v, got %v", expected, ids)
			break
		}
	}
}

func TestFavoritesStore_UnknownIDIsLegal(t *testing.T) {
	s := NewFavoritesStore()

	// Favoriting an id with no matching content is harmless; it is simply
	// never rendered.
	s.Toggle("ceased-to-exist")

	if !s.IsFavorite("ceased-to-exist") {
		t.Error("Unknown ids are legal favorites")
	}
}

func TestFavoritesStore_LoadReplacesWholesale(t *testing.T) {
	s := NewFavoritesStore()

	s.Toggle("old")
	s.Load([]string{"x", "y", "x"})

	ids := s.IDs()
	if len(ids) != 2 {
		t.Fatalf("Expected duplicates collapsed to 2 ids, got %v", ids)
	}
	if s.IsFavorite("old") {
		t.Error("Load should replace the previous set")
	}
	if ids[0] != "x" || ids[1] != "y" {
		t.Errorf("Expected [x y], got %v", ids)
	}
}

func TestFavoritesStore_IDsIsACopy(t *testing.T) {
	s := NewFavoritesStore()

	s.Toggle("a")
	ids := s.IDs()
	ids[0] = "mutated"

	if s.IDs()[0] != "a" {
		t.Error("Mutating the returned slice must not affect the store")
	}
}
