package domain

import (
	"sort"

	"github.com/m04kA/keystone-front/pkg/types"
)

// TimeSlot bookable start time of a theme on a date.
// Reserved is a point-in-time snapshot and is never trusted past the next submit.
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString // может быть пустым
	Reserved  bool
}

// IsOpen true, если слот можно выбрать
func (s *TimeSlot) IsOpen() bool {
	return !s.Reserved
}

// NormalizeSlots sorts slots by start time ascending and drops duplicate ids
// (first occurrence wins). The input slice is not modified.
func NormalizeSlots(slots []TimeSlot) []TimeSlot {
	seen := make(map[int64]struct{}, len(slots))
	out := make([]TimeSlot, 0, len(slots))

	for _, s := range slots {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.IsBefore(out[j].StartTime)
	})

	return out
}

// FindSlot ищет слот по ID
func FindSlot(slots []TimeSlot, id int64) (TimeSlot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}
