package models

import "fmt"

// AvailabilitySettings controls how the bookable window is generated.
// All times are UTC; StartOfWorkingMinutesUTC is minutes from midnight
// (e.g., 480 for 08:00).
type AvailabilitySettings struct {
	WindowDays               int `bson:"windowDays" json:"windowDays"`
	WorkingHoursPerDay       int `bson:"workingHoursPerDay" json:"workingHoursPerDay"`
	SlotDurationMinutes      int `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
	StartOfWorkingMinutesUTC int `bson:"startOfWorkingMinutesUtc" json:"startOfWorkingMinutesUtc"`
}

// Validate checks the settings invariant: every field strictly positive.
func (s AvailabilitySettings) Validate() error {
	if s.WindowDays <= 0 {
		return fmt.Errorf("windowDays must be positive, got %d", s.WindowDays)
	}
	if s.WorkingHoursPerDay <= 0 {
		return fmt.Errorf("workingHoursPerDay must be positive, got %d", s.WorkingHoursPerDay)
	}
	if s.SlotDurationMinutes <= 0 {
		return fmt.Errorf("slotDurationMinutes must be positive, got %d", s.SlotDurationMinutes)
	}
	if s.StartOfWorkingMinutesUTC <= 0 {
		return fmt.Errorf("startOfWorkingMinutesUtc must be positive, got %d", s.StartOfWorkingMinutesUTC)
	}
	return nil
}

// SlotsPerDay returns how many whole slots fit in a working day.
// A non-integral division truncates; remainder minutes are dropped.
func (s AvailabilitySettings) SlotsPerDay() int {
	return s.WorkingHoursPerDay * 60 / s.SlotDurationMinutes
}
