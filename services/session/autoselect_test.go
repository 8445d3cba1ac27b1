package session

import (
	"testing"
	"time"

	"medexam/models"
)

func TestAutoSelect_PicksMiddleVisibleDay(t *testing.T) {
	s := makeSession(21)
	AutoSelect(s)

	// floor(min(7, 21)/2) = 3, then its earliest slot.
	if s.SelectedDayIndex != 3 {
		t.Fatalf("SelectedDayIndex = %d; want 3", s.SelectedDayIndex)
	}
	want := s.Result.Days[3].Slots[0].Start
	if !s.SelectedSlotStart.Equal(want) {
		t.Errorf("SelectedSlotStart = %v; want earliest slot %v", s.SelectedSlotStart, want)
	}
	if !s.AutoSelected {
		t.Error("one-shot flag not set")
	}
}

func TestAutoSelect_ShortList(t *testing.T) {
	s := makeSession(3)
	AutoSelect(s)
	// floor(min(7, 3)/2) = 1.
	if s.SelectedDayIndex != 1 {
		t.Errorf("SelectedDayIndex = %d; want 1", s.SelectedDayIndex)
	}
}

func TestAutoSelect_EmptyResult(t *testing.T) {
	s := makeSession(0)
	AutoSelect(s)
	if s.SelectedDayIndex != -1 {
		t.Errorf("SelectedDayIndex = %d; want -1", s.SelectedDayIndex)
	}
	if !s.AutoSelected {
		t.Error("flag should still arm on an empty result")
	}
}

func TestAutoSelect_Idempotent(t *testing.T) {
	s := makeSession(21)
	AutoSelect(s)

	// The user clears the auto pick; a second run must not re-select.
	apply(t, s, models.SessionAction{Type: models.ActionClear})
	AutoSelect(s)
	if s.SelectedDayIndex != -1 {
		t.Errorf("auto-selection re-ran: index %d", s.SelectedDayIndex)
	}
}

func TestAutoSelect_SkipsWhenPagedOrSelected(t *testing.T) {
	s := makeSession(21)
	s.Offset = 7
	AutoSelect(s)
	if s.AutoSelected || s.SelectedDayIndex != -1 {
		t.Error("auto-selection ran on a paged window")
	}

	s = makeSession(21)
	apply(t, s, models.SessionAction{Type: models.ActionSelectDay, DayIndex: 5})
	AutoSelect(s)
	if s.SelectedDayIndex != 5 {
		t.Error("auto-selection overrode an explicit choice")
	}
}

func TestAutoSelect_DayWithoutExaminersLeavesSlotUnset(t *testing.T) {
	s := makeSession(1)
	s.Result.Days[0].Slots = []models.SlotAvailability{{
		Start: time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
	}}
	AutoSelect(s)
	if !s.SelectedSlotStart.IsZero() {
		t.Error("slot selected despite no eligible examiner")
	}
}
