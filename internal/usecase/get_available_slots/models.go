package get_available_slots

import "github.com/m04kA/keystone-front/internal/domain"

// Request модель запроса слотов одной темы
type Request struct {
	ThemeID int64
	Date    string // YYYY-MM-DD
}

// Response слоты темы на дату
type Response struct {
	ThemeID  int64
	Date     string
	Slots    []domain.TimeSlot // по возрастанию времени начала, без дублей
	Degraded bool              // бэкенд не ответил, список пуст
}

// CatalogRequest модель запроса слотов для нескольких тем
type CatalogRequest struct {
	ThemeIDs []int64
	Date     string
}

// CatalogResponse слоты по каждой теме
type CatalogResponse struct {
	Date    string
	ByTheme map[int64]*Response
}
