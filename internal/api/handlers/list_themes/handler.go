package list_themes

import (
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
)

const msgThemesUnavailable = "테마 목록을 불러오지 못했습니다. 잠시 후 다시 시도해주세요."

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

// Handle GET /api/v1/themes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	themes, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("GET /themes - Failed to list themes: %v", err)
		handlers.RespondBadGateway(w, msgThemesUnavailable)
		return
	}

	h.logger.Info("GET /themes - Themes retrieved: count=%d", len(themes))
	handlers.RespondJSON(w, http.StatusOK, FromDomainThemes(themes))
}
