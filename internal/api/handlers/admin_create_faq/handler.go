package admin_create_faq

import (
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
)

const (
	msgInvalidRequest = "요청 형식이 올바르지 않습니다."
	msgCreateFailed   = "FAQ 등록 중 오류가 발생했습니다."
)

type CreateFaqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
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

// Handle POST /api/v1/admin/faqs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFaqRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/faqs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	err := h.service.CreateFaq(r.Context(), domain.Faq{Question: req.Question, Answer: req.Answer})
	if err != nil {
		if handlers.RespondValidation(w, err) {
			h.logger.Warn("POST /admin/faqs - Validation failed: %v", err)
			return
		}
		h.logger.Error("POST /admin/faqs - Failed to create faq: %v", err)
		handlers.RespondBadGateway(w, msgCreateFailed)
		return
	}

	h.logger.Info("POST /admin/faqs - Faq created")
	handlers.RespondJSON(w, http.StatusCreated, nil)
}
