package get_catalog_availability

import (
	"context"

	"github.com/m04kA/keystone-front/internal/domain"
	getAvailableSlots "github.com/m04kA/keystone-front/internal/usecase/get_available_slots"
)

type ThemeCatalog interface {
	List(ctx context.Context) ([]domain.Theme, error)
}

type CatalogSlotsUseCase interface {
	ExecuteForCatalog(ctx context.Context, req *getAvailableSlots.CatalogRequest) (*getAvailableSlots.CatalogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
