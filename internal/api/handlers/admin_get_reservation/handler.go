package admin_get_reservation

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
	msgReservationNotFound  = "예약 정보를 찾을 수 없습니다."
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

// Handle GET /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /admin/reservations/{id} - Invalid reservation ID: %q", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	reservation, err := h.service.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrReservationNotFound):
			h.logger.Warn("GET /admin/reservations/{id} - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		default:
			h.logger.Error("GET /admin/reservations/{id} - Failed to get reservation: id=%d, error=%v", id, err)
			handlers.RespondBadGateway(w, "")
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservation(reservation))
}
