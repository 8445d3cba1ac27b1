package session

import "medexam/models"

// AutoSelect picks the initial highlighted day and slot for a fresh
// session: the middle day of the first visible page, then its earliest
// slot that still has an examiner. It runs only when nothing is
// selected and the window has not been paged; the one-shot flag makes
// a second run a no-op.
func AutoSelect(s *models.PickerSession) {
	if s.AutoSelected || s.Offset != 0 || s.SelectedDayIndex >= 0 {
		return
	}
	s.AutoSelected = true

	total := len(s.Result.Days)
	if total == 0 {
		return
	}
	visible := s.MaxDaysToShow
	if total < visible {
		visible = total
	}
	dayIndex := visible / 2

	day := s.Result.Days[dayIndex]
	if len(day.Slots) == 0 {
		return
	}
	s.SelectedDayIndex = dayIndex
	for _, slot := range day.Slots {
		if len(slot.Examiners) > 0 {
			s.SelectedSlotStart = slot.Start
			return
		}
	}
}
