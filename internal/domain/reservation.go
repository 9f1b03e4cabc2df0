package domain

import (
	"time"

	"github.com/m04kA/keystone-front/pkg/types"
)

// ReservationStatus статус брони на стороне бэкенда
type ReservationStatus string

const (
	StatusWait      ReservationStatus = "WAIT"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// IsValid true для известных статусов
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusWait, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// RefundStatus статус возврата по отмененной брони
type RefundStatus string

const (
	RefundPending   RefundStatus = "PENDING"
	RefundCompleted RefundStatus = "COMPLETED"
)

func (s RefundStatus) IsValid() bool {
	return s == RefundPending || s == RefundCompleted
}

// PaymentType способ оплаты
type PaymentType string

const (
	PaymentCard PaymentType = "CARD"
	PaymentCash PaymentType = "CASH"
)

func (p PaymentType) IsValid() bool {
	return p == PaymentCard || p == PaymentCash
}

// DefaultPaymentType оплата на месте
const DefaultPaymentType = PaymentCash

// Reservation server-owned reservation as the client sees it
type Reservation struct {
	ID            int64
	Date          string // YYYY-MM-DD, локальная календарная дата
	ThemeName     string
	StartTime     types.TimeString
	EndTime       types.TimeString
	CustomerName  string
	CustomerPhone string
	HeadCount     int
	PaymentType   PaymentType
	Status        ReservationStatus

	// Заполняется только для отмененных
	CancelledAt   *time.Time
	RefundBank    string
	RefundAccount string
	RefundStatus  RefundStatus
}

// IsCancelled true, если бронь отменена
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CreatedReservation reference returned by the backend after a successful booking
type CreatedReservation struct {
	ID int64
}

// NewReservation what the booking flow submits
type NewReservation struct {
	ThemeID       int64
	TimeSlotID    int64
	Date          string
	CustomerName  string
	CustomerPhone string
	HeadCount     int
	PaymentType   PaymentType
	CaptchaToken  string
}

// RefundAccount банковские реквизиты для возврата
type RefundAccount struct {
	Bank    string
	Account string
}

// AdminReservationUpdate full replacement of the admin-mutable fields
type AdminReservationUpdate struct {
	Status        ReservationStatus
	HeadCount     int
	RefundBank    string
	RefundAccount string
	RefundStatus  RefundStatus // пусто, если бронь не отменена
}

// AdminReservationPage страница списка броней для админки
type AdminReservationPage struct {
	Items         []Reservation
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
