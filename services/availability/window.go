package availability

import (
	"time"

	"medexam/models"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// BuildDayWindows generates the calendar skeleton for the configured
// window: one DayAvailability per day for settings.WindowDays
// consecutive days from start, each carrying the canonical ascending
// slot boundaries. Everything is normalized to UTC so DST shifts never
// move a slot.
//
// Slots span WorkingHoursPerDay hours from StartOfWorkingMinutesUTC in
// SlotDurationMinutes steps; a remainder that does not fill a whole
// slot is dropped.
func BuildDayWindows(start time.Time, settings models.AvailabilitySettings) []models.DayAvailability {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	slotsPerDay := settings.SlotsPerDay()
	duration := time.Duration(settings.SlotDurationMinutes) * time.Minute

	days := make([]models.DayAvailability, 0, settings.WindowDays)
	for dayOffset := 0; dayOffset < settings.WindowDays; dayOffset++ {
		day := startDay.AddDate(0, 0, dayOffset)
		workStart := day.Add(time.Duration(settings.StartOfWorkingMinutesUTC) * time.Minute)

		slots := make([]models.SlotAvailability, 0, slotsPerDay)
		for i := 0; i < slotsPerDay; i++ {
			slotStart := workStart.Add(time.Duration(i) * duration)
			slots = append(slots, models.SlotAvailability{
				Start: slotStart,
				End:   slotStart.Add(duration),
			})
		}

		days = append(days, models.DayAvailability{
			Date:    day.Format(dateLayout),
			Weekday: day.Weekday().String(),
			Slots:   slots,
		})
	}
	return days
}
