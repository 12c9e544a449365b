package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dailydash/dailydash/app/cfg"
	"github.com/dailydash/dailydash/app/content"
	"github.com/dailydash/dailydash/app/feed"
	"github.com/dailydash/dailydash/app/persistence"
	"github.com/dailydash/dailydash/app/store"
	"github.com/dailydash/dailydash/app/tasks"
)

func NewHandler(contentStore *store.ContentStore, sourceCache *store.SourceCache,
	favorites *store.FavoritesStore, preferences *store.PreferencesStore, ui *store.UIStore,
	adapter *persistence.Adapter, debouncer *store.Debouncer,
	scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		contentStore: contentStore,
		sourceCache:  sourceCache,
		favorites:    favorites,
		preferences:  preferences,
		ui:           ui,
		adapter:      adapter,
		debouncer:    debouncer,
		scheduler:    scheduler,
	}
}

// GetFeed returns the main feed view: the stored content resolved through the
// user-controlled display order, narrowed by the committed type filter and
// search query.
func (h *Handler) GetFeed(c *gin.Context) {
	byID, order := h.contentStore.Snapshot()
	items := feed.Project(byID, order, h.ui.TypeFilter(), h.ui.SearchQuery())

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// GetFavorites returns the favorited subset of the merged content set in
// merge order, narrowed by the committed search query. Ids that no longer
// resolve to content are omitted.
func (h *Handler) GetFavorites(c *gin.Context) {
	items := feed.ProjectFavorites(h.sourceCache.Merged(), h.favorites.IDs(), h.ui.SearchQuery())

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// GetTrending returns the trending view: leading news items plus the trending
// movie batch, narrowed by the committed search query.
func (h *Handler) GetTrending(c *gin.Context) {
	items := feed.ProjectTrending(h.sourceCache.News(), h.sourceCache.Trending(), h.ui.SearchQuery())

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
		"content":   h.contentStore.Len(),
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"content_items":  h.contentStore.Len(),
		"feed_order_len": len(h.contentStore.FeedOrder()),
		"favorites":      h.favorites.Len(),
		"trending_items": len(h.sourceCache.Trending()),
		"type_filter":    string(h.ui.TypeFilter()),
		"search_query":   h.ui.SearchQuery(),
		"theme":          string(h.ui.Theme()),
		"sidebar_open":   h.ui.SidebarOpen(),
	})
}

// ReorderFeed replaces the display order with the permutation supplied by the
// client and persists it. Ids are not validated against stored content.
func (h *Handler) ReorderFeed(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.contentStore.ReorderFeed(req.Order)
	h.adapter.SaveFeedOrder(req.Order)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"total":   len(req.Order),
	})
}

// ToggleFavorite flips favorite membership for the given content id and
// persists the resulting set.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing content id parameter"})
		return
	}

	favorite := h.favorites.Toggle(id)
	h.adapter.SaveFavorites(h.favorites.IDs())

	c.JSON(http.StatusOK, gin.H{
		"id":       id,
		"favorite": favorite,
	})
}

func (h *Handler) ToggleSidebar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"open": h.ui.ToggleSidebar(),
	})
}

func (h *Handler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.preferences.Get())
}

// UpdatePreferences replaces the category subscriptions, persists them, and
// enqueues a refresh so the new categories take effect without waiting for
// the next scheduling tick.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	var prefs store.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.preferences.Load(prefs)
	h.adapter.SavePreferences(h.preferences.Get())

	if err := h.scheduler.EnqueueRefresh(); err != nil {
		slog.Warn("Failed to enqueue refresh after preferences update", "error", err)
	}

	c.JSON(http.StatusOK, h.preferences.Get())
}

func (h *Handler) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": string(h.ui.Theme())})
}

// UpdateTheme sets the visual theme and persists it. Unknown tokens are
// rejected.
func (h *Handler) UpdateTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	theme := store.Theme(req.Theme)
	if !h.ui.SetTheme(theme) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown theme token", "theme": req.Theme})
		return
	}

	h.adapter.SaveTheme(theme)

	c.JSON(http.StatusOK, gin.H{"theme": string(theme)})
}

// UpdateSearch schedules a search query commit after the debounce window.
// Rapid successive calls coalesce: only the last query within a window is
// committed to the view state.
func (h *Handler) UpdateSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	query := req.Query
	h.debouncer.Trigger(func() {
		h.ui.SetSearchQuery(query)
	})

	c.JSON(http.StatusAccepted, gin.H{
		"query":   query,
		"pending": true,
	})
}

// RefreshContent enqueues an immediate content and trending refresh instead
// of waiting for the next scheduling tick.
func (h *Handler) RefreshContent(c *gin.Context) {
	if err := h.scheduler.EnqueueRefresh(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue refresh tasks",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// UpdateFilter sets the active content type filter. Unknown values are
// rejected.
func (h *Handler) UpdateFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	filter := content.TypeFilter(req.Filter)
	if !h.ui.SetTypeFilter(filter) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown filter value", "filter": req.Filter})
		return
	}

	c.JSON(http.StatusOK, gin.H{"filter": string(filter)})
}
