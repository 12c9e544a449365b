package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailydash/dailydash/app/content"
	"github.com/dailydash/dailydash/app/persistence"
	"github.com/dailydash/dailydash/app/store"
	"github.com/dailydash/dailydash/app/tasks"
)

type fakeRepo struct {
	values map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: make(map[string]string)}
}

func (r *fakeRepo) Get(key string) (string, bool, error) {
	value, ok := r.values[key]
	return value, ok, nil
}

func (r *fakeRepo) Set(key, value string) error {
	r.values[key] = value
	return nil
}

func (r *fakeRepo) Delete(key string) error {
	delete(r.values, key)
	return nil
}

type fakeScheduler struct {
	refreshes int
}

func (s *fakeScheduler) Start()                                {}
func (s *fakeScheduler) Stop()                                 {}
func (s *fakeScheduler) EnqueueTask(tasks.TaskInterface) error { return nil }

func (s *fakeScheduler) EnqueueRefresh() error {
	s.refreshes++
	return nil
}

type testEnv struct {
	router       *gin.Engine
	repo         *fakeRepo
	scheduler    *fakeScheduler
	contentStore *store.ContentStore
	sourceCache  *store.SourceCache
	favorites    *store.FavoritesStore
	ui           *store.UIStore
}

func newTestEnv(t *testing.T, apiAccessKey string) *testEnv {
	t.Helper()

	repo := newFakeRepo()
	scheduler := &fakeScheduler{}
	contentStore := store.NewContentStore()
	sourceCache := store.NewSourceCache()
	favorites := store.NewFavoritesStore()
	ui := store.NewUIStore()

	handler := NewHandler(contentStore, sourceCache, favorites, store.NewPreferencesStore(), ui,
		persistence.NewAdapter(repo), store.NewDebouncer(20*time.Millisecond), scheduler)

	return &testEnv{
		router:       NewServer(handler, apiAccessKey),
		repo:         repo,
		scheduler:    scheduler,
		contentStore: contentStore,
		sourceCache:  sourceCache,
		favorites:    favorites,
		ui:           ui,
	}
}

func (e *testEnv) request(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func itemIDs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	var response struct {
		Items []content.NormalizedContent `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	ids := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func seedContent(e *testEnv) {
	news := []content.NormalizedContent{
		{ID: "n1", Type: content.TypeNews, Title: "Go release"},
		{ID: "n2", Type: content.TypeNews, Title: "Database tuning"},
	}
	movies := []content.NormalizedContent{
		{ID: "movie-1", Type: content.TypeMovie, Title: "Space Epic"},
	}

	e.sourceCache.SetNews(news)
	e.sourceCache.SetMovies(movies)
	e.contentStore.SetContent(e.sourceCache.Merged())
}

func TestGetFeed(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	w := env.request("GET", "/feed", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	ids := itemIDs(t, w)
	expected := []string{"n1", "n2", "movie-1", "social-1", "social-2", "social-3", "social-4"}
	if len(ids) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(ids))
	}
	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("Position %d: expected '%s', got '%s'", i, id, ids[i])
		}
	}
}

func TestGetFeed_AppliesCommittedFilter(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	w := env.request("PUT", "/filter", `{"filter":"movie"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	ids := itemIDs(t, env.request("GET", "/feed", ""))
	if len(ids) != 1 || ids[0] != "movie-1" {
		t.Errorf("Expected only the movie item, got %v", ids)
	}
}

func TestUpdateFilter_RejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.request("PUT", "/filter", `{"filter":"podcast"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown filter, got %d", w.Code)
	}
}

func TestReorderFeed(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	w := env.request("POST", "/feed/order", `{"order":["movie-1","n2","n1"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	ids := itemIDs(t, env.request("GET", "/feed", ""))
	if len(ids) != 3 || ids[0] != "movie-1" || ids[1] != "n2" || ids[2] != "n1" {
		t.Errorf("Expected reordered feed, got %v", ids)
	}

	if env.repo.values[persistence.KeyFeedOrder] != `["movie-1","n2","n1"]` {
		t.Errorf("Reorder should persist the new order, got '%s'", env.repo.values[persistence.KeyFeedOrder])
	}
}

func TestReorderFeed_ToleratesStaleIDs(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	w := env.request("POST", "/feed/order", `{"order":["n1","gone","n2"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	ids := itemIDs(t, env.request("GET", "/feed", ""))
	if len(ids) != 2 || ids[0] != "n1" || ids[1] != "n2" {
		t.Errorf("Stale ids should be dropped from the projection, got %v", ids)
	}
}

func TestToggleFavoriteAndGetFavorites(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	// Favorite out of merge order; the view must come back in merge order.
	env.request("POST", "/favorites/movie-1/toggle", "")
	env.request("POST", "/favorites/n1/toggle", "")

	ids := itemIDs(t, env.request("GET", "/favorites", ""))
	if len(ids) != 2 || ids[0] != "n1" || ids[1] != "movie-1" {
		t.Errorf("Favorites should project in merge order, got %v", ids)
	}

	if env.repo.values[persistence.KeyFavorites] != `["movie-1","n1"]` {
		t.Errorf("Favorites should persist in insertion order, got '%s'", env.repo.values[persistence.KeyFavorites])
	}
}

func TestToggleFavorite_ClearDoesNotPersistEmptySet(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	env.request("POST", "/favorites/n1/toggle", "")
	env.request("POST", "/favorites/n1/toggle", "")

	if len(env.favorites.IDs()) != 0 {
		t.Error("Second toggle should clear the favorite")
	}
	if env.repo.values[persistence.KeyFavorites] != `["n1"]` {
		t.Errorf("Clearing the last favorite must leave the previous snapshot, got '%s'",
			env.repo.values[persistence.KeyFavorites])
	}
}

func TestGetTrending(t *testing.T) {
	env := newTestEnv(t, "")

	news := make([]content.NormalizedContent, 0, 8)
	for _, id := range []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8"} {
		news = append(news, content.NormalizedContent{ID: id, Type: content.TypeNews, Title: id})
	}
	env.sourceCache.SetNews(news)
	env.sourceCache.SetTrending([]content.NormalizedContent{
		{ID: "movie-9", Type: content.TypeMovie, Title: "Trending Movie"},
	})

	ids := itemIDs(t, env.request("GET", "/trending", ""))
	if len(ids) != 7 {
		t.Fatalf("Expected 6 news + 1 trending movie, got %d items", len(ids))
	}
	if ids[6] != "movie-9" {
		t.Errorf("Trending movies should follow the news items, got %v", ids)
	}
}

func TestUpdateSearch_DebouncedCommit(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	w := env.request("PUT", "/search", `{"query":"space"}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected status 202, got %d", w.Code)
	}

	if env.ui.SearchQuery() != "" {
		t.Error("Query must not be committed before the debounce window elapses")
	}

	env.request("PUT", "/search", `{"query":"epic"}`)

	time.Sleep(60 * time.Millisecond)

	if got := env.ui.SearchQuery(); got != "epic" {
		t.Errorf("Expected last query 'epic' committed after the window, got '%s'", got)
	}

	ids := itemIDs(t, env.request("GET", "/feed", ""))
	if len(ids) != 1 || ids[0] != "movie-1" {
		t.Errorf("Committed search should narrow the feed, got %v", ids)
	}
}

func TestUpdateTheme(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.request("PUT", "/theme", `{"theme":"bg3"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if env.repo.values[persistence.KeyTheme] != `"bg3"` {
		t.Errorf("Theme should be persisted, got '%s'", env.repo.values[persistence.KeyTheme])
	}

	w = env.request("PUT", "/theme", `{"theme":"bg9"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for unknown theme token, got %d", w.Code)
	}
	if env.ui.Theme() != store.ThemeBg3 {
		t.Errorf("Rejected token must not change the theme, got '%s'", env.ui.Theme())
	}
}

func TestUpdatePreferences(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.request("PUT", "/preferences", `{"newsCategories":["science"],"socialCategories":["following"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var prefs store.Preferences
	getResp := env.request("GET", "/preferences", "")
	if err := json.Unmarshal(getResp.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("Failed to decode preferences: %v", err)
	}
	if len(prefs.NewsCategories) != 1 || prefs.NewsCategories[0] != "science" {
		t.Errorf("Expected updated news categories, got %v", prefs.NewsCategories)
	}

	if env.repo.values[persistence.KeyPreferences] == "" {
		t.Error("Preferences should be persisted")
	}
	if env.scheduler.refreshes != 1 {
		t.Errorf("Preferences update should enqueue a refresh, got %d", env.scheduler.refreshes)
	}
}

func TestToggleSidebar(t *testing.T) {
	env := newTestEnv(t, "")

	var response struct {
		Open bool `json:"open"`
	}

	w := env.request("POST", "/sidebar/toggle", "")
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.Open {
		t.Error("First toggle should open the sidebar")
	}

	w = env.request("POST", "/sidebar/toggle", "")
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Open {
		t.Error("Second toggle should close the sidebar")
	}
}

func TestRefreshContent(t *testing.T) {
	env := newTestEnv(t, "")

	w := env.request("POST", "/refresh", "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected status 202, got %d", w.Code)
	}
	if env.scheduler.refreshes != 1 {
		t.Errorf("Expected one refresh enqueued, got %d", env.scheduler.refreshes)
	}
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t, "secret")

	w := env.request("POST", "/sidebar/toggle", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Mutating endpoint without key should return 401, got %d", w.Code)
	}

	req := httptest.NewRequest("POST", "/sidebar/toggle", strings.NewReader(""))
	req.Header.Set("X-API-Key", "secret")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Mutating endpoint with valid key should succeed, got %d", rec.Code)
	}

	req = httptest.NewRequest("POST", "/sidebar/toggle", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Bearer token should be accepted, got %d", rec.Code)
	}

	if w := env.request("GET", "/feed", ""); w.Code != http.StatusOK {
		t.Errorf("Read endpoints stay open when auth is enabled, got %d", w.Code)
	}
}

func TestHealthAndStats(t *testing.T) {
	env := newTestEnv(t, "")
	seedContent(env)

	if w := env.request("GET", "/health", ""); w.Code != http.StatusOK {
		t.Errorf("Expected status 200 from /health, got %d", w.Code)
	}

	w := env.request("GET", "/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200 from /stats, got %d", w.Code)
	}

	var stats struct {
		ContentItems int `json:"content_items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to decode stats: %v", err)
	}
	if stats.ContentItems != 7 {
		t.Errorf("Expected 7 content items, got %d", stats.ContentItems)
	}
}
