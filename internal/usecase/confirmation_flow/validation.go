package confirmation_flow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
	"github.com/m04kA/keystone-front/internal/validation"
)

// Сообщения для пользователя
const (
	MsgLookupFieldsRequired = "예약번호, 이름, 전화번호를 모두 입력해주세요."
	MsgNotFound             = "예약 정보를 찾을 수 없습니다."
	MsgCancelConfirm        = "정말 예약을 취소하시겠습니까?"
	MsgAlreadyCancelled     = "이미 취소된 예약입니다."
	MsgCancelFailed         = "예약 취소 중 오류가 발생했습니다."
	MsgRefundRequired       = "환불 계좌 정보를 입력해주세요."
	MsgInvalidBank          = "은행명은 한글 7자 이내로 입력해주세요."
	MsgInvalidAccount       = "계좌번호는 숫자만 최대 20자리까지 입력 가능합니다."
	MsgRefundSaved          = "예약 취소 및 환불 정보가 저장되었습니다."
	MsgRefundFailed         = "환불 계좌 저장 중 오류가 발생했습니다."
)

// validateLookup: пустые поля дают подсказку, неверный формат - общий ErrNotFound
func validateLookup(reservationID, name, phone string) error {
	if reservationID == "" || name == "" || phone == "" {
		return validation.NewError("lookup", MsgLookupFieldsRequired)
	}

	if !validation.IsDigitsOnly(reservationID, domain.MaxReservationIDLen) ||
		!validation.IsBoundedScript(name, domain.MaxNameLength) ||
		!validation.IsDigitsOnly(phone, domain.MaxPhoneLength) {
		return ErrNotFound
	}

	return nil
}

func validateRefund(bank, account string) error {
	if strings.TrimSpace(bank) == "" || strings.TrimSpace(account) == "" {
		return validation.NewError("refund", MsgRefundRequired)
	}
	if !validation.IsBoundedScript(bank, domain.MaxNameLength) {
		return validation.NewError("refundBank", MsgInvalidBank)
	}
	if !validation.IsDigitsOnly(account, domain.MaxAccountLength) {
		return validation.NewError("refundAccount", MsgInvalidAccount)
	}
	return nil
}

// categorizeLookup: отказ бэкенда по любой причине выглядит для клиента как "не найдено"
func categorizeLookup(err error) error {
	if errors.Is(err, keystone.ErrNotFound) || errors.Is(err, keystone.ErrRejected) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// categorize переводит ошибку клиента в ошибку сценария
func categorize(err error) error {
	switch {
	case errors.Is(err, keystone.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, keystone.ErrRejected), errors.Is(err, keystone.ErrConflict), errors.Is(err, keystone.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
