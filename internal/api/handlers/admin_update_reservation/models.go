package admin_update_reservation

import (
	"strings"

	"github.com/m04kA/keystone-front/internal/domain"
)

// UpdateReservationRequest HTTP request model: полная замена редактируемых полей
type UpdateReservationRequest struct {
	Status        string `json:"reservationStatus"`
	HeadCount     int    `json:"headCount"`
	RefundBank    string `json:"refundBank"`
	RefundAccount string `json:"refundAccount"`
	RefundStatus  string `json:"refundStatus"`
}

func (r *UpdateReservationRequest) ToDomainUpdate() domain.AdminReservationUpdate {
	return domain.AdminReservationUpdate{
		Status:        domain.ReservationStatus(strings.ToUpper(r.Status)),
		HeadCount:     r.HeadCount,
		RefundBank:    strings.TrimSpace(r.RefundBank),
		RefundAccount: strings.TrimSpace(r.RefundAccount),
		RefundStatus:  domain.RefundStatus(strings.ToUpper(r.RefundStatus)),
	}
}
