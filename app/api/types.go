package api

import (
	"github.com/dailydash/dailydash/app/persistence"
	"github.com/dailydash/dailydash/app/store"
	"github.com/dailydash/dailydash/app/tasks"
)

type Handler struct {
	contentStore *store.ContentStore
	sourceCache  *store.SourceCache
	favorites    *store.FavoritesStore
	preferences  *store.PreferencesStore
	ui           *store.UIStore
	adapter      *persistence.Adapter
	debouncer    *store.Debouncer
	scheduler    tasks.TaskSchedulerInterface
}

type reorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type filterRequest struct {
	Filter string `json:"filter" binding:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}
