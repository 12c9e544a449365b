// Package persistence snapshots store state into durable key-value storage
// and restores it on startup. Writes are best-effort: a failed write is
// logged and never surfaced, and malformed persisted data degrades to the
// store defaults instead of faulting.
package persistence

import (
	"encoding/json"
	"log/slog"

	"github.com/dailydash/dailydash/app/database"
	"github.com/dailydash/dailydash/app/store"
)

// Snapshot keys, one per persisted state slice.
const (
	KeyFeedOrder   = "dailydash-feed-order"
	KeyFavorites   = "dailydash-favorites"
	KeyPreferences = "dailydash-preferences"
	KeyTheme       = "dailydash-theme"
)

type Adapter struct {
	repo database.SnapshotRepository
}

func NewAdapter(repo database.SnapshotRepository) *Adapter {
	return &Adapter{repo: repo}
}

// Restore reads every snapshot key and dispatches the matching load
// operation. Absent keys and unparseable values leave the store at its
// default initial state.
func (a *Adapter) Restore(contentStore *store.ContentStore, favorites *store.FavoritesStore,
	preferences *store.PreferencesStore, ui *store.UIStore) {

	var order []string
	if a.load(KeyFeedOrder, &order) {
		contentStore.LoadFeedOrder(order)
	}

	var favoriteIDs []string
	if a.load(KeyFavorites, &favoriteIDs) {
		favorites.Load(favoriteIDs)
	}

	var prefs store.Preferences
	if a.load(KeyPreferences, &prefs) {
		preferences.Load(prefs)
	}

	var theme store.Theme
	if a.load(KeyTheme, &theme) {
		if !ui.SetTheme(theme) {
			slog.Warn("Ignoring persisted theme with unknown token", "theme", theme)
		}
	}
}

// SaveFeedOrder persists the display order. Called on every user-initiated
// reorder.
func (a *Adapter) SaveFeedOrder(ids []string) {
	a.save(KeyFeedOrder, ids)
}

// SaveFavorites persists the favorites set, but only once it is non-empty.
// Clearing all favorites intentionally leaves the previous snapshot in
// place until the next favorite is added; a restart after clearing restores
// the pre-clear set.
func (a *Adapter) SaveFavorites(ids []string) {
	if len(ids) == 0 {
		return
	}
	a.save(KeyFavorites, ids)
}

// SavePreferences persists the category subscriptions.
func (a *Adapter) SavePreferences(prefs store.Preferences) {
	a.save(KeyPreferences, prefs)
}

// SaveTheme persists the visual theme token.
func (a *Adapter) SaveTheme(theme store.Theme) {
	a.save(KeyTheme, theme)
}

func (a *Adapter) load(key string, target interface{}) bool {
	value, found, err := a.repo.Get(key)
	if err != nil {
		slog.Warn("Failed to read snapshot, using defaults", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal([]byte(value), target); err != nil {
		slog.Warn("Malformed snapshot, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

func (a *Adapter) save(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("Failed to encode snapshot", "key", key, "error", err)
		return
	}

	if err := a.repo.Set(key, string(data)); err != nil {
		slog.Warn("Failed to write snapshot", "key", key, "error", err)
	}
}
