package admin_update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/service/admin"
)

const (
	msgInvalidReservationID = "예약 번호가 올바르지 않습니다."
	msgInvalidRequest       = "요청 형식이 올바르지 않습니다."
	msgReservationNotFound  = "예약 정보를 찾을 수 없습니다."
	msgCannotReopen         = "취소된 예약은 다른 상태로 변경할 수 없습니다."
	msgUpdateFailed         = "예약 수정 중 오류가 발생했습니다."
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /admin/reservations/{id} - Invalid reservation ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		if handlers.RespondValidation(w, err) {
			h.logger.Warn("PUT /admin/reservations/{id} - Validation failed: id=%d, error=%v", id, err)
			return
		}

		switch {
		case errors.Is(err, admin.ErrReservationNotFound):
			h.logger.Warn("PUT /admin/reservations/{id} - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, admin.ErrInvalidTransition):
			h.logger.Warn("PUT /admin/reservations/{id} - Cannot reopen cancelled reservation: id=%d", id)
			handlers.RespondConflict(w, msgCannotReopen)
		default:
			h.logger.Error("PUT /admin/reservations/{id} - Failed to update reservation: id=%d, error=%v", id, err)
			handlers.RespondBadGateway(w, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PUT /admin/reservations/{id} - Reservation updated: id=%d, status=%s", id, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservation(updated))
}
