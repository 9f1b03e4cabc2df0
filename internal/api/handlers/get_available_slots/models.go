package get_available_slots

import (
	"github.com/m04kA/keystone-front/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ThemeID  int64                   `json:"themeId"`
	Date     string                  `json:"date"`
	Slots    []handlers.SlotResponse `json:"slots"`
	Degraded bool                    `json:"degraded"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		ThemeID:  resp.ThemeID,
		Date:     resp.Date,
		Slots:    handlers.FromDomainSlots(resp.Slots),
		Degraded: resp.Degraded,
	}
}

// ToUseCaseRequest создает запрос use case; формат даты проверяет use case
func ToUseCaseRequest(themeID int64, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		ThemeID: themeID,
		Date:    date,
	}
}
