package admin_list_reservations

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/service/admin/models"
)

// ReservationPageResponse HTTP response model
type ReservationPageResponse struct {
	Items         []*handlers.ReservationResponse `json:"items"`
	Page          int                             `json:"page"`
	Size          int                             `json:"size"`
	TotalElements int64                           `json:"totalElements"`
	TotalPages    int                             `json:"totalPages"`
}

// ToListFilter разбирает query параметры status, keyword, page, size
func ToListFilter(q url.Values) (models.ListFilter, error) {
	filter := models.ListFilter{
		Status:  domain.ReservationStatus(strings.ToUpper(q.Get("status"))),
		Keyword: strings.TrimSpace(q.Get("keyword")),
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Page = page
	}

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return filter, err
		}
		filter.Size = size
	}

	return filter, nil
}

func FromDomainPage(p *domain.AdminReservationPage) *ReservationPageResponse {
	items := make([]*handlers.ReservationResponse, len(p.Items))
	for i := range p.Items {
		items[i] = handlers.FromDomainReservation(&p.Items[i])
	}
	return &ReservationPageResponse{
		Items:         items,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
