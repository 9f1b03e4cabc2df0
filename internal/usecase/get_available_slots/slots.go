package get_available_slots

import (
	"context"
	"errors"

	"github.com/m04kA/keystone-front/internal/domain"
	"github.com/m04kA/keystone-front/internal/integrations/keystone"
)

// lookup запрашивает слоты одной темы. Любая ошибка, кроме отсутствия темы,
// превращается в пустой список с флагом Degraded.
func (uc *UseCase) lookup(ctx context.Context, themeID int64, date string) (*Response, error) {
	resp := &Response{ThemeID: themeID, Date: date, Slots: []domain.TimeSlot{}}

	slots, err := uc.client.GetAvailableTimesWithGracefulDegradation(ctx, themeID, date)
	if err != nil {
		if errors.Is(err, keystone.ErrNotFound) {
			return nil, ErrThemeNotFound
		}

		uc.logger.Warn("GetAvailableSlots: degraded to empty list for theme_id=%d, date=%s: %v", themeID, date, err)
		uc.metrics.DegradedLookup()
		resp.Degraded = true
		return resp, nil
	}

	resp.Slots = domain.NormalizeSlots(slots)
	return resp, nil
}
