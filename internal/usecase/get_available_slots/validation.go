package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/keystone-front/internal/domain"
)

// parseDate разбирает YYYY-MM-DD как календарную дату без сдвига часового пояса
func parseDate(date string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return d, nil
}

// validateDate проверяет формат и то, что дата не в прошлом.
// "Сегодня" определяется в часовом поясе заведения.
func validateDate(date string, now time.Time, loc *time.Location) error {
	d, err := parseDate(date)
	if err != nil {
		return err
	}

	if isDateInPast(d, now.In(loc)) {
		return fmt.Errorf("%w: %s", ErrDateInPast, date)
	}
	return nil
}

// isDateInPast сравнивает только календарные даты
func isDateInPast(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
