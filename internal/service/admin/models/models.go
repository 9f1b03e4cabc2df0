package models

import "github.com/m04kA/keystone-front/internal/domain"

// ListFilter фильтр списка броней
type ListFilter struct {
	Status  domain.ReservationStatus // пусто - все активные
	Keyword string
	Page    int // с нуля
	Size    int
}

// Normalize подставляет значения по умолчанию и ограничивает номер и размер страницы
func (f ListFilter) Normalize() ListFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Page > domain.MaxAdminPage {
		f.Page = domain.MaxAdminPage
	}
	if f.Size <= 0 {
		f.Size = domain.DefaultAdminPageSize
	}
	if f.Size > domain.MaxAdminPageSize {
		f.Size = domain.MaxAdminPageSize
	}
	return f
}
