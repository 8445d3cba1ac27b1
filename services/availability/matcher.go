package availability

import (
	"fmt"

	"medexam/models"
)

// supportIndex groups support providers by provider organisation and
// kind, preserving source order within each bucket.
type supportIndex map[string]map[string][]models.SupportProvider

func buildSupportIndex(providers []models.SupportProvider) supportIndex {
	idx := make(supportIndex)
	for _, sp := range providers {
		byKind, ok := idx[sp.ProviderID]
		if !ok {
			byKind = make(map[string][]models.SupportProvider)
			idx[sp.ProviderID] = byKind
		}
		byKind[sp.Kind] = append(byKind[sp.Kind], sp)
	}
	return idx
}

// bookingKey identifies one consumed examiner slot.
func bookingKey(examinerID, date string, startMin int) string {
	return fmt.Sprintf("%s|%s|%d", examinerID, date, startMin)
}

func buildConsumedIndex(bookings []models.ExistingBooking) map[string]struct{} {
	consumed := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		consumed[bookingKey(b.ExaminerID, b.Date, b.SlotStartMinutes)] = struct{}{}
	}
	return consumed
}

// MatchSlots cross-references examiner and support schedules against
// the day/slot skeleton and returns the displayable availability tree:
// every slot keeps only examiners that are free, not double-booked and
// eligible under the service requirements; slots with no examiners are
// dropped, and days with no remaining slots are dropped too. Examiner
// order follows the source order of the examiners slice; nothing is
// re-ranked.
func MatchSlots(
	skeleton []models.DayAvailability,
	examiners []models.Examiner,
	support []models.SupportProvider,
	bookings []models.ExistingBooking,
	reqs models.ServiceRequirements,
) []models.DayAvailability {
	supportIdx := buildSupportIndex(support)
	consumed := buildConsumedIndex(bookings)

	var days []models.DayAvailability
	for _, day := range skeleton {
		weekday := weekdayNumber(day)

		var slots []models.SlotAvailability
		for _, slot := range day.Slots {
			startMin := slot.Start.Hour()*60 + slot.Start.Minute()
			endMin := startMin + int(slot.End.Sub(slot.Start).Minutes())

			var options []models.ExaminerAvailabilityOption
			for _, ex := range examiners {
				if !ex.Schedule.CoversSlot(day.Date, weekday, startMin, endMin) {
					continue
				}
				if _, taken := consumed[bookingKey(ex.ID, day.Date, startMin)]; taken {
					continue
				}

				opt := models.ExaminerAvailabilityOption{
					ExaminerID:   ex.ID,
					ExaminerName: ex.Name,
					ProviderID:   ex.ProviderID,
					Specialty:    ex.Specialty,
					Clinic:       ex.Clinic,
				}
				if reqs.InterpreterRequired {
					opt.Interpreters = freeSupport(supportIdx, ex.ProviderID, models.SupportKindInterpreter, day.Date, weekday, startMin, endMin)
				}
				if reqs.ChaperoneRequired {
					opt.Chaperones = freeSupport(supportIdx, ex.ProviderID, models.SupportKindChaperone, day.Date, weekday, startMin, endMin)
				}
				if reqs.TransportRequired {
					opt.Transporters = freeSupport(supportIdx, ex.ProviderID, models.SupportKindTransporter, day.Date, weekday, startMin, endMin)
				}

				if !Eligible(opt, reqs) {
					continue
				}
				options = append(options, opt)
			}

			if len(options) == 0 {
				continue
			}
			slots = append(slots, models.SlotAvailability{
				Start:     slot.Start,
				End:       slot.End,
				Examiners: options,
			})
		}

		if len(slots) == 0 {
			continue
		}
		days = append(days, models.DayAvailability{
			Date:    day.Date,
			Weekday: day.Weekday,
			Slots:   slots,
		})
	}
	return days
}

// freeSupport returns the provider group's support providers of the
// given kind that are free for the interval, in source order.
func freeSupport(idx supportIndex, providerID, kind, date string, weekday, startMin, endMin int) []models.SupportOption {
	byKind, ok := idx[providerID]
	if !ok {
		return nil
	}
	var free []models.SupportOption
	for _, sp := range byKind[kind] {
		if sp.Schedule.CoversSlot(date, weekday, startMin, endMin) {
			free = append(free, models.SupportOption{ID: sp.ID, Name: sp.Name})
		}
	}
	return free
}

func weekdayNumber(day models.DayAvailability) int {
	if len(day.Slots) > 0 {
		return int(day.Slots[0].Start.Weekday())
	}
	if t, err := parseDate(day.Date); err == nil {
		return int(t.Weekday())
	}
	return 0
}
