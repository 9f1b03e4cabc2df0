package confirmation_flow

import (
	"github.com/m04kA/keystone-front/internal/api/handlers"
	confirmationFlow "github.com/m04kA/keystone-front/internal/usecase/confirmation_flow"
)

type LookupRequest struct {
	ReservationID string `json:"reservationId"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
}

type RefundRequest struct {
	RefundBank    string `json:"refundBank"`
	RefundAccount string `json:"refundAccount"`
}

// FlowResponse HTTP response model
type FlowResponse struct {
	FlowID      string                        `json:"flowId"`
	State       string                        `json:"state"`
	Reservation *handlers.ReservationResponse `json:"reservation,omitempty"`
	CancelID    int64                         `json:"cancelId,omitempty"`
	Message     string                        `json:"message,omitempty"`
}

func FromSnapshot(flowID string, s confirmationFlow.Snapshot) *FlowResponse {
	resp := &FlowResponse{
		FlowID:      flowID,
		State:       string(s.State),
		Reservation: handlers.FromDomainReservation(s.Reservation),
		CancelID:    s.CancelID,
	}

	switch s.State {
	case confirmationFlow.StateCancelConfirm:
		resp.Message = confirmationFlow.MsgCancelConfirm
	case confirmationFlow.StateDone:
		resp.Message = confirmationFlow.MsgRefundSaved
	}

	return resp
}
