package themes

import "github.com/m04kA/keystone-front/internal/domain"

// cachedTheme формат темы в Redis
type cachedTheme struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Difficulty      int    `json:"difficulty"`
	MinPerson       int    `json:"min_person"`
	PlayTimeMinutes int    `json:"play_time_minutes"`
	PricePerPerson  int64  `json:"price_per_person"`
	ImageURL        string `json:"image_url"`
	IsActive        bool   `json:"is_active"`
}

func fromDomain(t domain.Theme) cachedTheme {
	return cachedTheme{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Difficulty:      t.Difficulty,
		MinPerson:       t.MinPerson,
		PlayTimeMinutes: t.PlayTimeMinutes,
		PricePerPerson:  t.PricePerPerson,
		ImageURL:        t.ImageURL,
		IsActive:        t.IsActive,
	}
}

func (c cachedTheme) toDomain() domain.Theme {
	return domain.Theme{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		Difficulty:      c.Difficulty,
		MinPerson:       c.MinPerson,
		PlayTimeMinutes: c.PlayTimeMinutes,
		PricePerPerson:  c.PricePerPerson,
		ImageURL:        c.ImageURL,
		IsActive:        c.IsActive,
	}
}
