package keystone

import (
	"strings"
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/pkg/types"
)

// Credential заголовок, который добавляется к каждому запросу в бэкенд
type Credential struct {
	Header string
	Value  string
}

// ThemeDTO тема в формате бэкенда
type ThemeDTO struct {
	ThemeID          int64  `json:"themeId"`
	ThemeName        string `json:"themeName"`
	ThemeDescription string `json:"themeDescription"`
	Difficulty       int    `json:"difficulty"`
	MinPerson        int    `json:"minPerson"`
	PlayTime         int    `json:"playTime"`
	PricePerPerson   int64  `json:"pricePerPerson"`
	ImageURL         string `json:"imageUrl"`
	IsActive         bool   `json:"isActive"`
}

func (d ThemeDTO) toDomain() domain.Theme {
	return domain.Theme{
		ID:              d.ThemeID,
		Name:            d.ThemeName,
		Description:     d.ThemeDescription,
		Difficulty:      d.Difficulty,
		MinPerson:       d.MinPerson,
		PlayTimeMinutes: d.PlayTime,
		PricePerPerson:  d.PricePerPerson,
		ImageURL:        d.ImageURL,
		IsActive:        d.IsActive,
	}
}

// TimeSlotDTO слот из /themes/{id}/available-times
type TimeSlotDTO struct {
	TimeSlotID int64            `json:"timeSlotId"`
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	Reserved   bool             `json:"reserved"`
}

func (d TimeSlotDTO) toDomain() domain.TimeSlot {
	return domain.TimeSlot{
		ID:        d.TimeSlotID,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Reserved:  d.Reserved,
	}
}

// CreateReservationRequest тело POST /reservations
type CreateReservationRequest struct {
	ThemeID         int64  `json:"themeId"`
	TimeSlotID      int64  `json:"timeSlotId"`
	ReservationDate string `json:"reservationDate"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	HeadCount       int    `json:"headCount"`
	PaymentType     string `json:"paymentType"`
	CaptchaToken    string `json:"captchaToken"`
}

func fromNewReservation(r domain.NewReservation) CreateReservationRequest {
	return CreateReservationRequest{
		ThemeID:         r.ThemeID,
		TimeSlotID:      r.TimeSlotID,
		ReservationDate: r.Date,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		HeadCount:       r.HeadCount,
		PaymentType:     string(r.PaymentType),
		CaptchaToken:    r.CaptchaToken,
	}
}

// createdReservationDTO бэкенд может вернуть объект с reservationId
type createdReservationDTO struct {
	ReservationID int64 `json:"reservationId"`
}

// ReservationDTO бронь из /reservations/confirm и админских списков
type ReservationDTO struct {
	ReservationID     int64            `json:"reservationId"`
	ReservationDate   string           `json:"reservationDate"`
	ThemeName         string           `json:"themeName"`
	StartTime         types.TimeString `json:"startTime"`
	EndTime           types.TimeString `json:"endTime"`
	CustomerName      string           `json:"customerName"`
	CustomerPhone     string           `json:"customerPhone"`
	HeadCount         int              `json:"headCount"`
	PaymentType       string           `json:"paymentType"`
	ReservationStatus string           `json:"reservationStatus"`
	RefundBank        string           `json:"refundBank"`
	RefundAccount     string           `json:"refundAccount"`
	RefundStatus      string           `json:"refundStatus"`
	CancelledAt       string           `json:"cancelledAt"`
}

func (d ReservationDTO) toDomain() domain.Reservation {
	r := domain.Reservation{
		ID:            d.ReservationID,
		Date:          d.ReservationDate,
		ThemeName:     d.ThemeName,
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		HeadCount:     d.HeadCount,
		PaymentType:   domain.PaymentType(d.PaymentType),
		Status:        domain.ReservationStatus(strings.ToUpper(d.ReservationStatus)),
		RefundBank:    d.RefundBank,
		RefundAccount: d.RefundAccount,
	}

	// Для неотмененных броней бэкенд присылает "N/A"
	if rs := domain.RefundStatus(strings.ToUpper(d.RefundStatus)); rs.IsValid() {
		r.RefundStatus = rs
	}

	if t, ok := parseLocalDateTime(d.CancelledAt); ok {
		r.CancelledAt = &t
	}

	return r
}

// PageDTO страница Spring Data
type PageDTO struct {
	Content       []ReservationDTO `json:"content"`
	Number        int              `json:"number"`
	Size          int              `json:"size"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
}

func (p PageDTO) toDomain() domain.AdminReservationPage {
	items := make([]domain.Reservation, len(p.Content))
	for i, dto := range p.Content {
		items[i] = dto.toDomain()
	}
	return domain.AdminReservationPage{
		Items:         items,
		Page:          p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

// RefundAccountRequest тело PUT /reservations/cancel/{cancelId}/refund
type RefundAccountRequest struct {
	RefundBank    string `json:"refundBank"`
	RefundAccount string `json:"refundAccount"`
}

// AdminUpdateRequest тело PUT /admin/reservations/{id}.
// Все поля передаются всегда: это полная замена, а не merge.
type AdminUpdateRequest struct {
	ReservationStatus string `json:"reservationStatus"`
	HeadCount         int    `json:"headCount"`
	RefundBank        string `json:"refundBank"`
	RefundAccount     string `json:"refundAccount"`
	RefundStatus      string `json:"refundStatus,omitempty"`
}

func fromAdminUpdate(u domain.AdminReservationUpdate) AdminUpdateRequest {
	return AdminUpdateRequest{
		ReservationStatus: string(u.Status),
		HeadCount:         u.HeadCount,
		RefundBank:        u.RefundBank,
		RefundAccount:     u.RefundAccount,
		RefundStatus:      string(u.RefundStatus),
	}
}

// NoticeDTO объявление
type NoticeDTO struct {
	ID         int64  `json:"id,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	NoticeType string `json:"noticeType"`
	NoticeDate string `json:"noticeDate"`
}

func (d NoticeDTO) toDomain() domain.Notice {
	return domain.Notice{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
		Type:    domain.NoticeType(strings.ToLower(d.NoticeType)),
		Date:    d.NoticeDate,
	}
}

// FaqDTO вопрос-ответ
type FaqDTO struct {
	ID       int64  `json:"id,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (d FaqDTO) toDomain() domain.Faq {
	return domain.Faq{ID: d.ID, Question: d.Question, Answer: d.Answer}
}

// NoticeBoardDTO ответ GET /notice
type NoticeBoardDTO struct {
	Notices []NoticeDTO `json:"notices"`
	Faqs    []FaqDTO    `json:"faqs"`
}

// LocationDTO точка из GET /map
type LocationDTO struct {
	MapID     int64   `json:"mapId"`
	MapName   string  `json:"mapName"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ErrorResponse модель ошибки бэкенда
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// parseLocalDateTime разбирает LocalDateTime без часового пояса
func parseLocalDateTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
