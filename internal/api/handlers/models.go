package handlers

import (
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
)

// ThemeResponse тема в ответах API
type ThemeResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Difficulty      int    `json:"difficulty"`
	MinPerson       int    `json:"minPerson"`
	MaxPerson       int    `json:"maxPerson"`
	PlayTimeMinutes int    `json:"playTime"`
	PricePerPerson  int64  `json:"price"`
	ImageURL        string `json:"imageUrl"`
	IsActive        bool   `json:"isActive"`
}

// SlotResponse временной слот
type SlotResponse struct {
	ID        int64  `json:"timeSlotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Reserved  bool   `json:"reserved"`
}

// ReservationResponse бронь в ответах API
type ReservationResponse struct {
	ID            int64      `json:"reservationId"`
	Date          string     `json:"reservationDate"`
	ThemeName     string     `json:"themeName"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime,omitempty"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	HeadCount     int        `json:"headCount"`
	PaymentType   string     `json:"paymentType,omitempty"`
	Status        string     `json:"reservationStatus"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	RefundBank    string     `json:"refundBank,omitempty"`
	RefundAccount string     `json:"refundAccount,omitempty"`
	RefundStatus  string     `json:"refundStatus,omitempty"`
}

// FromDomainTheme конвертирует тему
func FromDomainTheme(t domain.Theme) ThemeResponse {
	_, max, _ := t.HeadCountRange()
	return ThemeResponse{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Difficulty:      t.Difficulty,
		MinPerson:       t.MinPerson,
		MaxPerson:       max,
		PlayTimeMinutes: t.PlayTimeMinutes,
		PricePerPerson:  t.PricePerPerson,
		ImageURL:        t.ImageURL,
		IsActive:        t.IsActive,
	}
}

// FromDomainSlots конвертирует слоты; nil превращается в пустой список
func FromDomainSlots(slots []domain.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = FromDomainSlot(s)
	}
	return out
}

func FromDomainSlot(s domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Reserved:  s.Reserved,
	}
}

// FromDomainReservation конвертирует бронь
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:            r.ID,
		Date:          r.Date,
		ThemeName:     r.ThemeName,
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		HeadCount:     r.HeadCount,
		PaymentType:   string(r.PaymentType),
		Status:        string(r.Status),
		CancelledAt:   r.CancelledAt,
		RefundBank:    r.RefundBank,
		RefundAccount: r.RefundAccount,
		RefundStatus:  string(r.RefundStatus),
	}
}
