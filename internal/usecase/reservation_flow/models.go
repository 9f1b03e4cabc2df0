package reservation_flow

import "github.com/m04kA/keystone-front/internal/domain"

// FlowName метка потока в метриках
const FlowName = "reservation"

// State состояние сценария бронирования
type State string

const (
	StateChoosingDate    State = "CHOOSING_DATE"
	StateChoosingTime    State = "CHOOSING_TIME"
	StateEnteringDetails State = "ENTERING_DETAILS"
	StateSubmitting      State = "SUBMITTING"
	StateSucceeded       State = "SUCCEEDED"
	StateFailed          State = "FAILED"
)

// acceptsDetails состояния, в которых доступен ввод данных
func (s State) acceptsDetails() bool {
	return s == StateEnteringDetails || s == StateFailed
}

// Details данные клиента из формы
type Details struct {
	Name         string
	Phone        string
	HeadCount    int
	PaymentType  domain.PaymentType
	CaptchaToken string
}

// DetailsPatch частичное обновление формы; nil - поле не меняется
type DetailsPatch struct {
	Name         *string
	Phone        *string
	HeadCount    *int
	PaymentType  *domain.PaymentType
	CaptchaToken *string
}

func (p DetailsPatch) apply(d Details) Details {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.HeadCount != nil {
		d.HeadCount = *p.HeadCount
	}
	if p.PaymentType != nil {
		d.PaymentType = *p.PaymentType
	}
	if p.CaptchaToken != nil {
		d.CaptchaToken = *p.CaptchaToken
	}
	return d
}

// Snapshot неизменяемый срез состояния для отображения
type Snapshot struct {
	State         State
	Theme         domain.Theme
	Date          string
	Slots         []domain.TimeSlot
	SlotsDegraded bool
	SelectedSlot  *domain.TimeSlot
	Details       Details
	MinHeadCount  int
	MaxHeadCount  int
	TotalPrice    int64
	Reservation   *domain.CreatedReservation
	LastError     error
}
