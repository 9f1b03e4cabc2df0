package list_themes

import (
	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
)

// ThemeListResponse HTTP response model
type ThemeListResponse struct {
	Themes []handlers.ThemeResponse `json:"themes"`
	Total  int                      `json:"total"`
}

func FromDomainThemes(themes []domain.Theme) *ThemeListResponse {
	out := make([]handlers.ThemeResponse, len(themes))
	for i, t := range themes {
		out[i] = handlers.FromDomainTheme(t)
	}
	return &ThemeListResponse{Themes: out, Total: len(out)}
}
