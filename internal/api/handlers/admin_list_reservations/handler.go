package admin_list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/service/admin"
)

const (
	msgInvalidPaging = "페이지 번호가 올바르지 않습니다."
	msgListFailed    = "예약 목록을 불러오지 못했습니다."
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

// Handle GET /api/v1/admin/reservations
// Query params: status, keyword, page (с нуля), size
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := ToListFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /admin/reservations - Invalid paging: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPaging)
		return
	}

	page, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidStatus):
			h.logger.Warn("GET /admin/reservations - Invalid status: %s", filter.Status)
			handlers.RespondBadRequest(w, admin.MsgInvalidStatus)
		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondBadGateway(w, msgListFailed)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations retrieved: count=%d, total=%d", len(page.Items), page.TotalElements)
	handlers.RespondJSON(w, http.StatusOK, FromDomainPage(page))
}
