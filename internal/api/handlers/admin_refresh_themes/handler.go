package admin_refresh_themes

import (
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
)

const msgRefreshFailed = "테마 캐시를 갱신하지 못했습니다."

type Handler struct {
	catalog ThemeCatalog
	logger  Logger
}

func NewHandler(catalog ThemeCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/themes/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Refresh(r.Context()); err != nil {
		h.logger.Error("POST /admin/themes/refresh - Failed to refresh: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgRefreshFailed)
		return
	}

	h.logger.Info("POST /admin/themes/refresh - Theme cache invalidated")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
