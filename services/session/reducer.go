package session

import (
	"errors"
	"fmt"
	"time"

	"medexam/models"
)

// ErrSessionCommitted marks a session that already handed off its
// selection; it is terminal.
var ErrSessionCommitted = errors.New("session is already committed")

// Apply reduces one picker action onto the session state. The rendered
// result is never touched; only offset and selection bookkeeping move.
// A committed session is terminal and rejects further actions.
func Apply(s *models.PickerSession, action models.SessionAction) error {
	if s.Committed {
		return fmt.Errorf("session %s: %w", s.ID, ErrSessionCommitted)
	}
	switch action.Type {
	case models.ActionSelectDay:
		selectDay(s, action.DayIndex)
	case models.ActionSelectSlot:
		selectSlot(s, action.SlotStart)
	case models.ActionNext:
		next(s)
	case models.ActionPrevious:
		previous(s)
	case models.ActionClear:
		clearSelection(s)
	default:
		return fmt.Errorf("unknown session action %q", action.Type)
	}
	return nil
}

// selectDay toggles day selection. Clicking the selected day again
// clears it; clicking a past-dated day is a no-op.
func selectDay(s *models.PickerSession, dayIndex int) {
	if dayIndex < 0 || dayIndex >= len(s.Result.Days) {
		return
	}
	if isPastDay(s, s.Result.Days[dayIndex].Date) {
		return
	}
	if s.SelectedDayIndex == dayIndex {
		clearSelection(s)
		return
	}
	s.SelectedDayIndex = dayIndex
	s.SelectedSlotStart = time.Time{}
}

// selectSlot toggles slot selection within the selected day. Slots
// that already started relative to the session's captured Now are
// unreachable.
func selectSlot(s *models.PickerSession, slotStart time.Time) {
	day := s.SelectedDay()
	if day == nil {
		return
	}
	var found *models.SlotAvailability
	for i := range day.Slots {
		if day.Slots[i].Start.Equal(slotStart) {
			found = &day.Slots[i]
			break
		}
	}
	if found == nil {
		return
	}
	if !found.Start.After(s.Now) {
		return
	}
	if s.SelectedSlotStart.Equal(slotStart) {
		s.SelectedSlotStart = time.Time{}
		return
	}
	s.SelectedSlotStart = slotStart
}

// next slides the window forward one page, clamped so the last page
// stays full. No-op once the last page is visible.
func next(s *models.PickerSession) {
	total := len(s.Result.Days)
	if s.Offset+s.MaxDaysToShow >= total {
		return
	}
	s.Offset += s.MaxDaysToShow
	if max := total - s.MaxDaysToShow; s.Offset > max {
		s.Offset = max
	}
	clearIfOutsideWindow(s)
}

// previous slides the window back one page. No-op at the start.
func previous(s *models.PickerSession) {
	if s.Offset == 0 {
		return
	}
	s.Offset -= s.MaxDaysToShow
	if s.Offset < 0 {
		s.Offset = 0
	}
	clearIfOutsideWindow(s)
}

func clearSelection(s *models.PickerSession) {
	s.SelectedDayIndex = -1
	s.SelectedSlotStart = time.Time{}
}

// clearIfOutsideWindow drops a selection that navigation pushed out of
// view. The selection is cleared, never remapped to another day.
func clearIfOutsideWindow(s *models.PickerSession) {
	if s.SelectedDayIndex < 0 {
		return
	}
	if s.SelectedDayIndex < s.Offset || s.SelectedDayIndex >= s.Offset+s.MaxDaysToShow {
		clearSelection(s)
	}
}

func isPastDay(s *models.PickerSession, date string) bool {
	today := s.Now.UTC().Format("2006-01-02")
	return date < today
}
