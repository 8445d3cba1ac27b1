package session

import (
	"errors"
	"testing"
	"time"

	"medexam/models"
)

func makeSession(totalDays int) *models.PickerSession {
	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	days := make([]models.DayAvailability, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		day := start.AddDate(0, 0, i)
		slots := []models.SlotAvailability{
			{
				Start:     day.Add(8 * time.Hour),
				End:       day.Add(9 * time.Hour),
				Examiners: []models.ExaminerAvailabilityOption{{ExaminerID: "E1", ExaminerName: "Dr. Adams"}},
			},
			{
				Start:     day.Add(9 * time.Hour),
				End:       day.Add(10 * time.Hour),
				Examiners: []models.ExaminerAvailabilityOption{{ExaminerID: "E1", ExaminerName: "Dr. Adams"}},
			},
		}
		days = append(days, models.DayAvailability{
			Date:    day.Format("2006-01-02"),
			Weekday: day.Weekday().String(),
			Slots:   slots,
		})
	}
	return &models.PickerSession{
		ID:               "test-session",
		Result:           models.AvailableExaminersResult{Days: days},
		MaxDaysToShow:    7,
		SelectedDayIndex: -1,
		Now:              time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC),
	}
}

func apply(t *testing.T, s *models.PickerSession, action models.SessionAction) {
	t.Helper()
	if err := Apply(s, action); err != nil {
		t.Fatalf("Apply(%+v): %v", action, err)
	}
}

func TestPagination_WindowArithmetic(t *testing.T) {
	s := makeSession(21)

	if got := len(s.DaysToShow()); got != 7 {
		t.Fatalf("len(daysToShow) = %d; want 7", got)
	}

	// Three next calls reach offset 14; a fourth is a no-op.
	for i := 0; i < 3; i++ {
		apply(t, s, models.SessionAction{Type: models.ActionNext})
	}
	if s.Offset != 14 {
		t.Fatalf("offset = %d; want 14", s.Offset)
	}
	apply(t, s, models.SessionAction{Type: models.ActionNext})
	if s.Offset != 14 {
		t.Errorf("next at boundary moved offset to %d", s.Offset)
	}

	// daysToShow length shrinks correctly near the end.
	if got, want := len(s.DaysToShow()), 7; got != want {
		t.Errorf("len(daysToShow) = %d; want %d", got, want)
	}
}

func TestPagination_PreviousAtStartIsNoop(t *testing.T) {
	s := makeSession(10)
	apply(t, s, models.SessionAction{Type: models.ActionPrevious})
	if s.Offset != 0 {
		t.Errorf("offset = %d; want 0", s.Offset)
	}
}

func TestPagination_ShortListNeverPaginates(t *testing.T) {
	s := makeSession(5)
	apply(t, s, models.SessionAction{Type: models.ActionNext})
	if s.Offset != 0 {
		t.Errorf("offset = %d; want 0 when everything already fits", s.Offset)
	}
	if got := len(s.DaysToShow()); got != 5 {
		t.Errorf("len(daysToShow) = %d; want 5", got)
	}
}

func TestSelection_DayThenSlotThenToggle(t *testing.T) {
	s := makeSession(10)

	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 2})
	if s.SelectedDayIndex != 2 {
		t.Fatalf("SelectedDayIndex = %d; want 2", s.SelectedDayIndex)
	}

	slotStart := s.Result.Days[2].Slots[0].Start
	apply(t, s, models.SessionAction{Type: models.ActionSelectSlot, SlotStart: slotStart})
	if s.SelectedSlot() == nil {
		t.Fatal("slot not selected")
	}

	// Re-selecting the same slot toggles it off; the day stays.
	apply(t, s, models.SessionAction{Type: models.ActionSelectSlot, SlotStart: slotStart})
	if s.SelectedSlot() != nil {
		t.Error("slot toggle failed")
	}
	if s.SelectedDayIndex != 2 {
		t.Error("day cleared by slot toggle")
	}

	// Re-selecting the same day clears both axes.
	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 2})
	if s.SelectedDayIndex != -1 {
		t.Errorf("SelectedDayIndex = %d; want -1 after day toggle", s.SelectedDayIndex)
	}
}

func TestSelection_SwitchingDayClearsSlot(t *testing.T) {
	s := makeSession(10)
	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 2})
	apply(t, s, models.SessionAction{Type: models.ActionSelectSlot, SlotStart: s.Result.Days[2].Slots[0].Start})
	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 3})
	if s.SelectedDayIndex != 3 {
		t.Fatalf("SelectedDayIndex = %d; want 3", s.SelectedDayIndex)
	}
	if !s.SelectedSlotStart.IsZero() {
		t.Error("slot selection survived a day switch")
	}
}

func TestSelection_ClearedNotRemappedOnNavigation(t *testing.T) {
	s := makeSession(21)
	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 1})
	apply(t, s, models.SessionAction{Type: models.ActionSelectSlot, SlotStart: s.Result.Days[1].Slots[0].Start})

	// Day 1 scrolls out of the next page: selection is cleared, not
	// remapped onto a different date.
	apply(t, s, models.SessionAction{Type: models.ActionNext})
	if s.SelectedDayIndex != -1 || !s.SelectedSlotStart.IsZero() {
		t.Errorf("selection = (%d, %v); want cleared", s.SelectedDayIndex, s.SelectedSlotStart)
	}

	// Paging back does not resurrect it.
	apply(t, s, models.SessionAction{Type: models.ActionPrevious})
	if s.SelectedDayIndex != -1 {
		t.Error("selection reappeared after previous()")
	}
}

func TestSelection_PastDayIsUnreachable(t *testing.T) {
	s := makeSession(10)
	s.Now = time.Date(2024, 7, 3, 12, 0, 0, 0, time.UTC) // days 0-1 are past

	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 0})
	if s.SelectedDayIndex != -1 {
		t.Errorf("past day selectable: index %d", s.SelectedDayIndex)
	}

	// Today's already-started slot is also unreachable.
	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 2})
	apply(t, s, models.SessionAction{Type: models.ActionSelectSlot, SlotStart: s.Result.Days[2].Slots[0].Start})
	if s.SelectedSlot() != nil {
		t.Error("already-started slot selectable")
	}
}

func TestApply_CommittedSessionIsTerminal(t *testing.T) {
	s := makeSession(5)
	s.Committed = true
	err := Apply(s, models.SessionAction{Type: models.ActionNext})
	if !errors.Is(err, ErrSessionCommitted) {
		t.Errorf("err = %v; want ErrSessionCommitted", err)
	}
}

func TestApply_UnknownAction(t *testing.T) {
	s := makeSession(5)
	if err := Apply(s, models.SessionAction{Type: "teleport"}); err == nil {
		t.Error("unknown action accepted")
	}
}
