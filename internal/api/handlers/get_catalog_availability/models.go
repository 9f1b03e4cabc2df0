package get_catalog_availability

import (
	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

// CatalogAvailabilityResponse HTTP response model
type CatalogAvailabilityResponse struct {
	Date   string              `json:"date"`
	Themes []ThemeAvailability `json:"themes"`
}

// ThemeAvailability тема со слотами; degraded=true, если слоты получить не удалось
type ThemeAvailability struct {
	Theme    handlers.ThemeResponse  `json:"theme"`
	Slots    []handlers.SlotResponse `json:"slots"`
	Degraded bool                    `json:"degraded"`
}

// FromUseCaseResponse сохраняет порядок тем каталога
func FromUseCaseResponse(themes []domain.Theme, resp *getAvailableSlots.CatalogResponse) *CatalogAvailabilityResponse {
	out := &CatalogAvailabilityResponse{
		Date:   resp.Date,
		Themes: make([]ThemeAvailability, 0, len(themes)),
	}

	for _, t := range themes {
		item := ThemeAvailability{Theme: handlers.FromDomainTheme(t), Slots: []handlers.SlotResponse{}}
		if r, ok := resp.ByTheme[t.ID]; ok {
			item.Slots = handlers.FromDomainSlots(r.Slots)
			item.Degraded = r.Degraded
		} else {
			item.Degraded = true
		}
		out.Themes = append(out.Themes, item)
	}

	return out
}
