package get_catalog_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

const (
	msgMissingDate       = "날짜를 선택해주세요."
	msgInvalidDate       = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
	msgDateInPast        = "지난 날짜는 선택할 수 없습니다."
	msgThemesUnavailable = "테마 목록을 불러오지 못했습니다. 잠시 후 다시 시도해주세요."
)

type Handler struct {
	catalog ThemeCatalog
	useCase CatalogSlotsUseCase
	logger  Logger
}

func NewHandler(catalog ThemeCatalog, useCase CatalogSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
// Слоты всех активных тем на дату, запросы к бэкенду идут параллельно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	themes, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("GET /availability - Failed to list themes: %v", err)
		handlers.RespondBadGateway(w, msgThemesUnavailable)
		return
	}

	themeIDs := make([]int64, len(themes))
	for i, t := range themes {
		themeIDs[i] = t.ID
	}

	result, err := h.useCase.ExecuteForCatalog(r.Context(), &getAvailableSlots.CatalogRequest{
		ThemeIDs: themeIDs,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date format: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /availability - Date in past: %s", date)
			handlers.RespondBadRequest(w, msgDateInPast)
		default:
			h.logger.Error("GET /availability - Failed to get availability: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: date=%s, themes=%d", date, len(themes))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(themes, result))
}
