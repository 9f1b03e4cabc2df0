package confirmation_flow

import "github.com/m04kA/keystone-front/internal/domain"

// FlowName метка потока в метриках
const FlowName = "confirmation"

// State состояние сценария проверки и отмены брони
type State string

const (
	StateLookup        State = "LOOKUP"
	StateFound         State = "FOUND"
	StateCancelConfirm State = "CANCEL_CONFIRM"
	StateRefundDetails State = "REFUND_DETAILS"
	StateDone          State = "DONE"
)

// Snapshot неизменяемый срез состояния для отображения
type Snapshot struct {
	State       State
	Reservation *domain.Reservation
	CancelID    int64
}
