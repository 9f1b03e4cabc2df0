package domain

import "strings"

// Theme bookable escape-room experience. Owned by the backend, read-only here.
type Theme struct {
	ID              int64
	Name            string
	Description     string
	Difficulty      int
	MinPerson       int
	PlayTimeMinutes int
	PricePerPerson  int64
	ImageURL        string
	IsActive        bool
}

// HeadCountRange returns the inclusive range of head counts the theme accepts.
// Returns ok=false when the theme's minimum is above the business ceiling.
func (t *Theme) HeadCountRange() (min, max int, ok bool) {
	min = t.MinPerson
	if min < 1 {
		min = 1
	}
	if min > MaxHeadCount {
		return 0, 0, false
	}
	return min, MaxHeadCount, true
}

// AcceptsHeadCount reports whether n is within [MinPerson, MaxHeadCount]
func (t *Theme) AcceptsHeadCount(n int) bool {
	min, max, ok := t.HeadCountRange()
	return ok && n >= min && n <= max
}

// TotalPrice display-only total; the backend computes the real charge
func (t *Theme) TotalPrice(headCount int) int64 {
	return int64(headCount) * t.PricePerPerson
}

// ResolveImageURL возвращает абсолютную ссылку на картинку.
// В базе бэкенда хранится либо полный URL, либо имя файла (иногда с префиксом upload/).
func ResolveImageURL(imageURL, uploadBase string) string {
	if imageURL == "" || strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	name := strings.TrimPrefix(strings.TrimPrefix(imageURL, "/"), "upload/")
	if uploadBase == "" {
		return name
	}
	return strings.TrimSuffix(uploadBase, "/") + "/" + name
}
