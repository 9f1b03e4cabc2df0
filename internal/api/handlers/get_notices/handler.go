package get_notices

import (
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
)

const msgBoardUnavailable = "공지사항을 불러오지 못했습니다. 잠시 후 다시 시도해주세요."

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context())
	if err != nil {
		h.logger.Error("GET /notices - Failed to get notice board: %v", err)
		handlers.RespondBadGateway(w, msgBoardUnavailable)
		return
	}

	h.logger.Info("GET /notices - Board retrieved: notices=%d, faqs=%d", len(board.Notices), len(board.Faqs))
	handlers.RespondJSON(w, http.StatusOK, FromServiceBoard(board))
}
