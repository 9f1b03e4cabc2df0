package reservation_flow

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
	MsgInvalidName      = "이름은 한글 7자 이내로 입력해주세요."
	MsgInvalidPhone     = "전화번호는 숫자만 최대 15자리까지 입력 가능합니다."
	MsgInvalidHeadCount = "인원은 %d명부터 %d명까지 선택할 수 있습니다."
	MsgCaptchaRequired  = "로봇이 아님을 확인해주세요."
	MsgInvalidPayment   = "결제 방식을 선택해주세요."
	MsgSucceeded        = "예약이 완료되었습니다."
	MsgSlotTaken        = "이미 예약된 시간입니다. 다른 시간을 선택해주세요."
	MsgSubmitFailed     = "예약 중 오류가 발생했습니다. 다시 시도해주세요."
)

// validateDetails проверяет форму; возвращается первая ошибка
func validateDetails(theme *domain.Theme, d Details) error {
	if !validation.IsBoundedScript(d.Name, domain.MaxNameLength) {
		return validation.NewError("name", MsgInvalidName)
	}

	if !validation.IsDigitsOnly(d.Phone, domain.MaxPhoneLength) {
		return validation.NewError("phone", MsgInvalidPhone)
	}

	min, max, _ := theme.HeadCountRange()
	if !validation.InRange(d.HeadCount, min, max) {
		return validation.NewError("headCount", fmt.Sprintf(MsgInvalidHeadCount, min, max))
	}

	if !d.PaymentType.IsValid() {
		return validation.NewError("paymentType", MsgInvalidPayment)
	}

	if strings.TrimSpace(d.CaptchaToken) == "" {
		return validation.NewError("captchaToken", MsgCaptchaRequired)
	}

	return nil
}

// categorize переводит ошибку клиента в ошибку сценария.
// Бэкенд сообщает о занятом слоте и о проваленной проверке капчи текстом,
// иногда с кодом 5xx, поэтому сначала смотрим на сообщение.
func categorize(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case errors.Is(err, keystone.ErrConflict), strings.Contains(msg, "이미 예약"):
		return fmt.Errorf("%w: %v", ErrSlotTaken, err)
	case strings.Contains(msg, "captcha"):
		return fmt.Errorf("%w: %v", ErrCaptchaRejected, err)
	case errors.Is(err, keystone.ErrRejected), errors.Is(err, keystone.ErrUnauthorized), errors.Is(err, keystone.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
