package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

const (
	msgInvalidThemeID = "테마 번호가 올바르지 않습니다."
	msgMissingDate    = "날짜를 선택해주세요."
	msgInvalidDate    = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
	msgDateInPast     = "지난 날짜는 선택할 수 없습니다."
	msgThemeNotFound  = "테마를 찾을 수 없습니다."
)

type Handler struct {
	useCase ThemeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ThemeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/themes/{themeId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	themeIDStr := mux.Vars(r)["themeId"]
	themeID, err := strconv.ParseInt(themeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /themes/{id}/available-slots - Invalid theme ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidThemeID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /themes/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(themeID, date))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /themes/{id}/available-slots - Invalid date format: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /themes/{id}/available-slots - Date in past: %s", date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /themes/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidThemeID)

		case errors.Is(err, getAvailableSlots.ErrThemeNotFound):
			h.logger.Warn("GET /themes/{id}/available-slots - Theme not found: theme_id=%d", themeID)
			handlers.RespondNotFound(w, msgThemeNotFound)

		default:
			h.logger.Error("GET /themes/{id}/available-slots - Failed to get slots: theme_id=%d, date=%s, error=%v",
				themeID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /themes/{id}/available-slots - Slots retrieved: theme_id=%d, date=%s, slots_count=%d, degraded=%t",
		themeID, date, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
