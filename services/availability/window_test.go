package availability

import (
	"testing"
	"time"

	"medexam/models"
)

func testSettings() models.AvailabilitySettings {
	return models.AvailabilitySettings{
		WindowDays:               7,
		WorkingHoursPerDay:       8,
		SlotDurationMinutes:      60,
		StartOfWorkingMinutesUTC: 480,
	}
}

func TestBuildDayWindows_Basic(t *testing.T) {
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC) // a Monday
	days := BuildDayWindows(start, testSettings())

	if len(days) != 7 {
		t.Fatalf("len(days) = %d; want 7", len(days))
	}
	day0 := days[0]
	if day0.Date != "2024-06-03" {
		t.Errorf("day0.Date = %s; want 2024-06-03", day0.Date)
	}
	if day0.Weekday != "Monday" {
		t.Errorf("day0.Weekday = %s; want Monday", day0.Weekday)
	}
	if len(day0.Slots) != 8 {
		t.Fatalf("len(day0.Slots) = %d; want 8", len(day0.Slots))
	}

	first := day0.Slots[0]
	if first.Start.Hour() != 8 || first.Start.Minute() != 0 {
		t.Errorf("first slot starts %v; want 08:00", first.Start)
	}
	if first.End.Hour() != 9 {
		t.Errorf("first slot ends %v; want 09:00", first.End)
	}
	last := day0.Slots[7]
	if last.Start.Hour() != 15 || last.End.Hour() != 16 {
		t.Errorf("last slot [%v, %v); want [15:00, 16:00)", last.Start, last.End)
	}

	if days[6].Date != "2024-06-09" {
		t.Errorf("day6.Date = %s; want 2024-06-09", days[6].Date)
	}
}

func TestBuildDayWindows_SlotInvariants(t *testing.T) {
	settings := testSettings()
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	dur := time.Duration(settings.SlotDurationMinutes) * time.Minute

	for _, day := range BuildDayWindows(start, settings) {
		for i, slot := range day.Slots {
			if got := slot.End.Sub(slot.Start); got != dur {
				t.Errorf("%s slot %d duration = %v; want %v", day.Date, i, got, dur)
			}
			if i == 0 {
				continue
			}
			prev := day.Slots[i-1]
			if !slot.Start.After(prev.Start) {
				t.Errorf("%s slots not strictly ordered at %d", day.Date, i)
			}
			if slot.Start.Before(prev.End) {
				t.Errorf("%s slots overlap at %d", day.Date, i)
			}
		}
	}
}

func TestBuildDayWindows_TruncatesPartialSlot(t *testing.T) {
	settings := testSettings()
	settings.SlotDurationMinutes = 45 // 480/45 = 10.67 -> 10 slots

	days := BuildDayWindows(time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), settings)
	if got := len(days[0].Slots); got != 10 {
		t.Errorf("len(slots) = %d; want 10 (remainder dropped)", got)
	}
}

func TestBuildDayWindows_NormalizesStartToMidnightUTC(t *testing.T) {
	// A mid-day start in a non-UTC zone still yields UTC day boundaries.
	loc := time.FixedZone("UTC+3", 3*3600)
	start := time.Date(2024, 6, 3, 14, 30, 0, 0, loc)

	days := BuildDayWindows(start, testSettings())
	slot0 := days[0].Slots[0]
	if slot0.Start.Location() != time.UTC {
		t.Errorf("slot start location = %v; want UTC", slot0.Start.Location())
	}
	if slot0.Start.Hour() != 8 {
		t.Errorf("slot0 starts %v; want 08:00 UTC", slot0.Start)
	}
}
