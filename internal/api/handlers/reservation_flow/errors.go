package reservation_flow

import (
	"errors"
	"net/http"

	"github.com/m04kA/keystone-front/internal/service/catalog"
	"github.com/m04kA/keystone-front/internal/service/sessions"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
	reservationFlow "github.com/m04kA/keystone-front/internal/usecase/reservation_flow"
	"github.com/m04kA/keystone-front/internal/validation"
)

const (
	msgFlowNotFound      = "예약 세션이 만료되었습니다. 처음부터 다시 시도해주세요."
	msgThemeNotFound     = "테마를 찾을 수 없습니다."
	msgThemeInactive     = "현재 예약할 수 없는 테마입니다."
	msgInvalidThemeID    = "테마 번호가 올바르지 않습니다."
	msgInvalidRequest    = "요청 형식이 올바르지 않습니다."
	msgInvalidState      = "지금은 이 작업을 할 수 없습니다. 화면을 새로고침해주세요."
	msgInProgress        = "예약을 처리하는 중입니다. 잠시만 기다려주세요."
	msgStaleDate         = "다른 날짜가 선택되었습니다."
	msgMissingDate       = "날짜를 선택해주세요."
	msgInvalidDate       = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
	msgDateInPast        = "지난 날짜는 선택할 수 없습니다."
	msgSlotNotFound      = "선택할 수 없는 시간입니다."
	msgSlotReserved      = "이미 예약된 시간입니다."
	msgCaptchaRejected   = "로봇 확인에 실패했습니다. 다시 시도해주세요."
	msgThemesUnavailable = "테마 정보를 불러오지 못했습니다. 잠시 후 다시 시도해주세요."
)

// errorResponse статус и сообщение для ошибки сценария
func errorResponse(err error) (int, string) {
	if msg, ok := validation.UserMessage(err); ok {
		return http.StatusBadRequest, msg
	}

	switch {
	case errors.Is(err, sessions.ErrSessionNotFound):
		return http.StatusNotFound, msgFlowNotFound
	case errors.Is(err, catalog.ErrThemeNotFound), errors.Is(err, getAvailableSlots.ErrThemeNotFound):
		return http.StatusNotFound, msgThemeNotFound
	case errors.Is(err, catalog.ErrUnavailable):
		return http.StatusBadGateway, msgThemesUnavailable
	case errors.Is(err, reservationFlow.ErrThemeInactive):
		return http.StatusConflict, msgThemeInactive

	case errors.Is(err, getAvailableSlots.ErrInvalidDate):
		return http.StatusBadRequest, msgInvalidDate
	case errors.Is(err, getAvailableSlots.ErrDateInPast):
		return http.StatusBadRequest, msgDateInPast

	case errors.Is(err, reservationFlow.ErrSlotNotFound):
		return http.StatusBadRequest, msgSlotNotFound
	case errors.Is(err, reservationFlow.ErrSlotReserved):
		return http.StatusConflict, msgSlotReserved

	case errors.Is(err, reservationFlow.ErrInvalidTransition):
		return http.StatusConflict, msgInvalidState
	case errors.Is(err, reservationFlow.ErrSubmitInProgress):
		return http.StatusConflict, msgInProgress
	case errors.Is(err, reservationFlow.ErrStaleResponse):
		return http.StatusConflict, msgStaleDate

	case errors.Is(err, reservationFlow.ErrSlotTaken):
		return http.StatusConflict, reservationFlow.MsgSlotTaken
	case errors.Is(err, reservationFlow.ErrCaptchaRejected):
		return http.StatusBadRequest, msgCaptchaRejected
	case errors.Is(err, reservationFlow.ErrRejected):
		return http.StatusBadRequest, reservationFlow.MsgSubmitFailed
	case errors.Is(err, reservationFlow.ErrUnavailable):
		return http.StatusBadGateway, reservationFlow.MsgSubmitFailed

	default:
		return http.StatusInternalServerError, ""
	}
}
