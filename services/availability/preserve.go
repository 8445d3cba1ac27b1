package availability

import (
	"sort"

	"medexam/models"
)

// PreserveBooking re-injects the examination's prior reservation into
// the matched grid. The triple (date, start hour, examiner) must stay
// visible even when fresh matching or requirement filtering removed
// it: the requirements in force today may differ from when the booking
// was made, and the user has to be able to re-confirm or change it.
// Matching is by start hour, the booking's stored granularity.
//
// skeleton is the unfiltered day window from BuildDayWindows, used to
// recreate a slot or day that filtering dropped entirely.
func PreserveBooking(
	days []models.DayAvailability,
	skeleton []models.DayAvailability,
	booking *models.ExistingBooking,
	examiners []models.Examiner,
) []models.DayAvailability {
	if booking == nil {
		return days
	}

	skeletonDay := findDay(skeleton, booking.Date)
	if skeletonDay == nil {
		// Prior booking falls outside the computed window.
		return days
	}

	hour := booking.SlotStartMinutes / 60
	canonical := findSkeletonSlot(skeletonDay, hour)

	dayIdx := indexOfDay(days, booking.Date)
	if dayIdx < 0 {
		if canonical == nil {
			// The booked hour no longer maps onto any canonical slot
			// under current settings; nothing sensible to render, and
			// a day is only shown while it has slots.
			return days
		}
		days = append(days, models.DayAvailability{
			Date:    skeletonDay.Date,
			Weekday: skeletonDay.Weekday,
		})
		sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
		dayIdx = indexOfDay(days, booking.Date)
	}
	day := &days[dayIdx]

	slotIdx := -1
	for i := range day.Slots {
		if day.Slots[i].Start.Hour() == hour {
			slotIdx = i
			break
		}
	}
	if slotIdx < 0 {
		if canonical == nil {
			return days
		}
		day.Slots = append(day.Slots, models.SlotAvailability{
			Start: canonical.Start,
			End:   canonical.End,
		})
		sort.SliceStable(day.Slots, func(i, j int) bool {
			return day.Slots[i].Start.Before(day.Slots[j].Start)
		})
		for i := range day.Slots {
			if day.Slots[i].Start.Hour() == hour {
				slotIdx = i
				break
			}
		}
	}
	slot := &day.Slots[slotIdx]

	for i := range slot.Examiners {
		if slot.Examiners[i].ExaminerID == booking.ExaminerID {
			slot.Examiners[i].IsPreviousBooking = true
			return days
		}
	}

	// The booked examiner was filtered out of this slot; rebuild the
	// card from the roster record.
	opt := models.ExaminerAvailabilityOption{
		ExaminerID:        booking.ExaminerID,
		IsPreviousBooking: true,
	}
	for _, ex := range examiners {
		if ex.ID == booking.ExaminerID {
			opt.ExaminerName = ex.Name
			opt.ProviderID = ex.ProviderID
			opt.Specialty = ex.Specialty
			opt.Clinic = ex.Clinic
			break
		}
	}
	slot.Examiners = append(slot.Examiners, opt)
	return days
}

func findDay(days []models.DayAvailability, date string) *models.DayAvailability {
	for i := range days {
		if days[i].Date == date {
			return &days[i]
		}
	}
	return nil
}

func indexOfDay(days []models.DayAvailability, date string) int {
	for i := range days {
		if days[i].Date == date {
			return i
		}
	}
	return -1
}

func findSkeletonSlot(day *models.DayAvailability, hour int) *models.SlotAvailability {
	for i := range day.Slots {
		if day.Slots[i].Start.Hour() == hour {
			return &day.Slots[i]
		}
	}
	return nil
}
