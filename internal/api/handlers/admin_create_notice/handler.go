package admin_create_notice

import (
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
)

const (
	msgInvalidRequest = "요청 형식이 올바르지 않습니다."
	msgCreateFailed   = "공지 등록 중 오류가 발생했습니다."
)

// CreateNoticeRequest HTTP request model; noticeDate по умолчанию сегодня
type CreateNoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"noticeType"`
	Date    string `json:"noticeDate"`
}

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

// Handle POST /api/v1/admin/notices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateNoticeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/notices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	err := h.service.CreateNotice(r.Context(), domain.Notice{
		Title:   req.Title,
		Content: req.Content,
		Type:    domain.NoticeType(req.Type),
		Date:    req.Date,
	})
	if err != nil {
		if handlers.RespondValidation(w, err) {
			h.logger.Warn("POST /admin/notices - Validation failed: %v", err)
			return
		}
		h.logger.Error("POST /admin/notices - Failed to create notice: %v", err)
		handlers.RespondBadGateway(w, msgCreateFailed)
		return
	}

	h.logger.Info("POST /admin/notices - Notice created: title=%q", req.Title)
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
