package admin

import (
	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/validation"
)

// Сообщения для администратора
const (
	MsgInvalidStatus       = "예약 상태가 올바르지 않습니다."
	MsgInvalidHeadCount    = "인원은 1명부터 7명까지 입력할 수 있습니다."
	MsgRefundOnlyCancelled = "환불 정보는 취소된 예약에만 입력할 수 있습니다."
	MsgInvalidRefundStatus = "환불 상태가 올바르지 않습니다."
	MsgInvalidBank         = "은행명은 한글 7자 이내로 입력해주세요."
	MsgInvalidAccount      = "계좌번호는 숫자만 최대 20자리까지 입력 가능합니다."
)

func validateUpdate(u domain.AdminReservationUpdate) error {
	if !u.Status.IsValid() {
		return validation.NewError("reservationStatus", MsgInvalidStatus)
	}

	if !validation.InRange(u.HeadCount, 1, domain.MaxHeadCount) {
		return validation.NewError("headCount", MsgInvalidHeadCount)
	}

	if u.Status != domain.StatusCancelled {
		if u.RefundBank != "" || u.RefundAccount != "" || u.RefundStatus != "" {
			return validation.NewError("refund", MsgRefundOnlyCancelled)
		}
		return nil
	}

	if u.RefundStatus != "" && !u.RefundStatus.IsValid() {
		return validation.NewError("refundStatus", MsgInvalidRefundStatus)
	}
	if u.RefundBank != "" && !validation.IsBoundedScript(u.RefundBank, domain.MaxNameLength) {
		return validation.NewError("refundBank", MsgInvalidBank)
	}
	if u.RefundAccount != "" && !validation.IsDigitsOnly(u.RefundAccount, domain.MaxAccountLength) {
		return validation.NewError("refundAccount", MsgInvalidAccount)
	}

	return nil
}
