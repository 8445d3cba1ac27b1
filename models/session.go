package models

import "time"

// Picker session action types.
const (
	ActionSelectDay  = "selectDay"
	ActionSelectSlot = "selectSlot"
	ActionNext       = "next"
	ActionPrevious   = "previous"
	ActionClear      = "clear"
)

// SessionAction is one discrete picker interaction.
type SessionAction struct {
	Type      string    `json:"type"`
	DayIndex  int       `json:"dayIndex,omitempty"`
	SlotStart time.Time `json:"slotStart,omitempty"`
}

// PickerSession holds the client-local transient state of one
// interactive slot picker: the immutable computed result plus
// pagination and selection bookkeeping. It is cached per session ID
// and reset on refresh; it is never shared across users.
type PickerSession struct {
	ID            string                   `json:"id"`
	ExamID        string                   `json:"examId"`
	ClaimantID    string                   `json:"claimantId"`
	Result        AvailableExaminersResult `json:"result"`
	Offset        int                      `json:"offset"`
	MaxDaysToShow int                      `json:"maxDaysToShow"`

	// SelectedDayIndex indexes Result.Days; -1 means no day selected.
	// SelectedSlotStart is the zero time when no slot is selected.
	SelectedDayIndex  int       `json:"selectedDayIndex"`
	SelectedSlotStart time.Time `json:"selectedSlotStart"`

	AutoSelected bool `json:"autoSelected"`
	Committed    bool `json:"committed"`

	// Now is captured when the session starts so past-date checks are
	// stable and testable for the session's lifetime.
	Now time.Time `json:"now"`
}

// DaysToShow returns the visible pagination window over the days that
// still have slots.
func (s *PickerSession) DaysToShow() []DayAvailability {
	total := len(s.Result.Days)
	if s.Offset >= total {
		return nil
	}
	end := s.Offset + s.MaxDaysToShow
	if end > total {
		end = total
	}
	return s.Result.Days[s.Offset:end]
}

// SelectedDay returns the currently selected day, or nil.
func (s *PickerSession) SelectedDay() *DayAvailability {
	if s.SelectedDayIndex < 0 || s.SelectedDayIndex >= len(s.Result.Days) {
		return nil
	}
	return &s.Result.Days[s.SelectedDayIndex]
}

// SelectedSlot returns the selected slot within the selected day, or nil.
func (s *PickerSession) SelectedSlot() *SlotAvailability {
	day := s.SelectedDay()
	if day == nil || s.SelectedSlotStart.IsZero() {
		return nil
	}
	for i := range day.Slots {
		if day.Slots[i].Start.Equal(s.SelectedSlotStart) {
			return &day.Slots[i]
		}
	}
	return nil
}
