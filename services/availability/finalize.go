package availability

import "medexam/models"

// FinalizeSelection converts a committed (examiner, slot, day) choice
// into an immutable SelectedAppointment snapshot. When a support list
// is non-empty its first entry becomes the singular assignment: "first
// available" is the documented deterministic rule, not arbitrary
// truncation. The snapshot holds no reference back into the grid and
// is not validated against live schedules; the booking collaborator
// re-checks at confirmation.
func FinalizeSelection(
	day models.DayAvailability,
	slot models.SlotAvailability,
	opt models.ExaminerAvailabilityOption,
) models.SelectedAppointment {
	appt := models.SelectedAppointment{
		ExaminerID:   opt.ExaminerID,
		ExaminerName: opt.ExaminerName,
		Date:         day.Date,
		SlotStart:    slot.Start,
		SlotEnd:      slot.End,
		Specialty:    opt.Specialty,
		Clinic:       opt.Clinic,
	}
	if len(opt.Interpreters) > 0 {
		first := opt.Interpreters[0]
		appt.Interpreter = &first
	}
	if len(opt.Chaperones) > 0 {
		first := opt.Chaperones[0]
		appt.Chaperone = &first
	}
	if len(opt.Transporters) > 0 {
		first := opt.Transporters[0]
		appt.Transporter = &first
	}
	return appt
}
