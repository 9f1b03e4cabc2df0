package confirmation_flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/keystone-front/internal/service/sessions"
	confirmationFlow "github.com/m04kA/keystone-front/internal/usecase/confirmation_flow"
	"github.com/m04kA/keystone-front/internal/validation"
)

const (
	msgFlowNotFound         = "세션이 만료되었습니다. 처음부터 다시 시도해주세요."
	msgInvalidRequest       = "요청 형식이 올바르지 않습니다."
	msgInvalidState         = "지금은 이 작업을 할 수 없습니다. 화면을 새로고침해주세요."
	msgInProgress           = "요청을 처리하는 중입니다. 잠시만 기다려주세요."
	msgConfirmationRequired = "취소 확인 후 진행해주세요."
	msgLookupFailed         = "예약 조회 중 오류가 발생했습니다. 다시 시도해주세요."
)

// errorResponse статус и сообщение; failMsg общее сообщение о сбое операции
func errorResponse(err error, failMsg string) (int, string) {
	if msg, ok := validation.UserMessage(err); ok {
		return http.StatusBadRequest, msg
	}

	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		return http.StatusNotFound, msgFlowNotFound
	case errors.Is(err, confirmationFlow.ErrNotFound):
		return http.StatusNotFound, confirmationFlow.MsgNotFound
	case errors.Is(err, confirmationFlow.ErrAlreadyCancelled):
		return http.StatusConflict, confirmationFlow.MsgAlreadyCancelled
	case errors.Is(err, confirmationFlow.ErrConfirmationRequired):
		return http.StatusConflict, msgConfirmationRequired
	case errors.Is(err, confirmationFlow.ErrInvalidTransition), errors.Is(err, confirmationFlow.ErrStaleResponse):
		return http.StatusConflict, msgInvalidState
	case errors.Is(err, confirmationFlow.ErrRequestInProgress):
		return http.StatusConflict, msgInProgress
	case errors.Is(err, confirmationFlow.ErrRejected):
		return http.StatusBadRequest, failMsg
	case errors.Is(err, confirmationFlow.ErrUnavailable):
		return http.StatusBadGateway, failMsg
	default:
		return http.StatusInternalServerError, ""
	}
}
