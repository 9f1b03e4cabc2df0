package get_theme

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/service/catalog"
)

const (
	msgInvalidThemeID = "테마 번호가 올바르지 않습니다."
	msgThemeNotFound  = "테마를 찾을 수 없습니다."
)

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

// Handle GET /api/v1/themes/{themeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	themeID, err := strconv.ParseInt(mux.Vars(r)["themeId"], 10, 64)
	if err != nil || themeID <= 0 {
		h.logger.Warn("GET /themes/{id} - Invalid theme ID: %q", mux.Vars(r)["themeId"])
		handlers.RespondBadRequest(w, msgInvalidThemeID)
		return
	}

	theme, err := h.catalog.Get(r.Context(), themeID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrThemeNotFound):
			h.logger.Warn("GET /themes/{id} - Theme not found: theme_id=%d", themeID)
			handlers.RespondNotFound(w, msgThemeNotFound)
		default:
			h.logger.Error("GET /themes/{id} - Failed to get theme: theme_id=%d, error=%v", themeID, err)
			handlers.RespondBadGateway(w, "")
		}
		return
	}

	h.logger.Info("GET /themes/{id} - Theme retrieved: theme_id=%d", themeID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainTheme(*theme))
}
