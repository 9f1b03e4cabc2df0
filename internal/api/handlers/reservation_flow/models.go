package reservation_flow

import (
	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
	reservationFlow "github.com/m04kA/keystone-front/internal/usecase/reservation_flow"
)

type CreateRequest struct {
	ThemeID int64 `json:"themeId"`
}

type SelectDateRequest struct {
	Date string `json:"date"`
}

type SelectSlotRequest struct {
	TimeSlotID int64 `json:"timeSlotId"`
}

// DetailsRequest данные формы; captchaToken токен анти-бот проверки
type DetailsRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	HeadCount    int    `json:"headCount"`
	PaymentType  string `json:"paymentType"`
	CaptchaToken string `json:"captchaToken"`
}

// SubmitRequest необязательные поля формы при отправке; отсутствующие поля не меняются
type SubmitRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	HeadCount    *int    `json:"headCount"`
	PaymentType  *string `json:"paymentType"`
	CaptchaToken *string `json:"captchaToken"`
}

func (r *SubmitRequest) ToPatch() reservationFlow.DetailsPatch {
	p := reservationFlow.DetailsPatch{
		Name:         r.Name,
		Phone:        r.Phone,
		HeadCount:    r.HeadCount,
		CaptchaToken: r.CaptchaToken,
	}
	if r.PaymentType != nil {
		pt := domain.PaymentType(*r.PaymentType)
		p.PaymentType = &pt
	}
	return p
}

// DetailsResponse токен наружу не отдается
type DetailsResponse struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	HeadCount   int    `json:"headCount"`
	PaymentType string `json:"paymentType"`
	HasCaptcha  bool   `json:"hasCaptcha"`
}

// FlowResponse HTTP response model
type FlowResponse struct {
	FlowID        string                  `json:"flowId"`
	State         string                  `json:"state"`
	Theme         handlers.ThemeResponse  `json:"theme"`
	Date          string                  `json:"date,omitempty"`
	Slots         []handlers.SlotResponse `json:"slots"`
	SlotsDegraded bool                    `json:"slotsDegraded"`
	SelectedSlot  *handlers.SlotResponse  `json:"selectedSlot,omitempty"`
	Details       DetailsResponse         `json:"details"`
	MinHeadCount  int                     `json:"minHeadCount"`
	MaxHeadCount  int                     `json:"maxHeadCount"`
	TotalPrice    int64                   `json:"totalPrice"`
	ReservationID *int64                  `json:"reservationId,omitempty"`
	Message       string                  `json:"message,omitempty"`
}

func (r *DetailsRequest) ToDetails() reservationFlow.Details {
	return reservationFlow.Details{
		Name:         r.Name,
		Phone:        r.Phone,
		HeadCount:    r.HeadCount,
		PaymentType:  domain.PaymentType(r.PaymentType),
		CaptchaToken: r.CaptchaToken,
	}
}

// FromSnapshot конвертирует срез состояния; message текст последней ошибки или успеха
func FromSnapshot(flowID string, s reservationFlow.Snapshot) *FlowResponse {
	resp := &FlowResponse{
		FlowID:        flowID,
		State:         string(s.State),
		Theme:         handlers.FromDomainTheme(s.Theme),
		Date:          s.Date,
		Slots:         handlers.FromDomainSlots(s.Slots),
		SlotsDegraded: s.SlotsDegraded,
		Details: DetailsResponse{
			Name:        s.Details.Name,
			Phone:       s.Details.Phone,
			HeadCount:   s.Details.HeadCount,
			PaymentType: string(s.Details.PaymentType),
			HasCaptcha:  s.Details.CaptchaToken != "",
		},
		MinHeadCount: s.MinHeadCount,
		MaxHeadCount: s.MaxHeadCount,
		TotalPrice:   s.TotalPrice,
	}

	if s.SelectedSlot != nil {
		slot := handlers.FromDomainSlot(*s.SelectedSlot)
		resp.SelectedSlot = &slot
	}
	if s.Reservation != nil {
		id := s.Reservation.ID
		resp.ReservationID = &id
		resp.Message = reservationFlow.MsgSucceeded
	}
	if s.LastError != nil {
		_, resp.Message = errorResponse(s.LastError)
	}

	return resp
}
