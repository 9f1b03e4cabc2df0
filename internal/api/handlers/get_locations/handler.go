package get_locations

import (
	"net/http"

	"github.com/m04kA/keystone-front/internal/api/handlers"
	"github.com/m04kA/keystone-front/internal/domain"
)

const msgLocationsUnavailable = "지점 정보를 불러오지 못했습니다. 잠시 후 다시 시도해주세요."

// LocationResponse точка на карте
type LocationResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type Handler struct {
	service ContentService
	logger  Logger
}

func NewHandler(service ContentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locations, err := h.service.Locations(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to get locations: %v", err)
		handlers.RespondBadGateway(w, msgLocationsUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomainLocations(locations))
}

func fromDomainLocations(locations []domain.Location) []LocationResponse {
	out := make([]LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = LocationResponse{
			ID:        l.ID,
			Name:      l.Name,
			Address:   l.Address,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		}
	}
	return out
}
