package models

import "time"

// ExistingBooking is a confirmed reservation referenced by the
// availability engine: it consumes the examiner's slot during matching
// and, when tied to the examination being edited, is re-surfaced in
// the grid regardless of current eligibility.
type ExistingBooking struct {
	ID               string    `bson:"id" json:"id"`
	ExamID           string    `bson:"examId" json:"examId"`
	ExaminerID       string    `bson:"examinerId" json:"examinerId"`
	Date             string    `bson:"date" json:"date"` // "2006-01-02"
	SlotStartMinutes int       `bson:"slotStartMinutes" json:"slotStartMinutes"`
	SlotEndMinutes   int       `bson:"slotEndMinutes" json:"slotEndMinutes"`
	Status           string    `bson:"status" json:"status"` // e.g., "Confirmed", "Cancelled"
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}

// SelectedAppointment is the immutable snapshot produced on commit. It
// is a value copy with no reference back into the availability grid,
// and it is unvalidated against live state: the booking collaborator
// re-checks the slot at confirmation time.
type SelectedAppointment struct {
	ExaminerID   string         `bson:"examinerId" json:"examinerId"`
	ExaminerName string         `bson:"examinerName" json:"examinerName"`
	Date         string         `bson:"date" json:"date"`
	SlotStart    time.Time      `bson:"slotStart" json:"slotStart"`
	SlotEnd      time.Time      `bson:"slotEnd" json:"slotEnd"`
	Specialty    string         `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Clinic       string         `bson:"clinic,omitempty" json:"clinic,omitempty"`
	Interpreter  *SupportOption `bson:"interpreter,omitempty" json:"interpreter,omitempty"`
	Chaperone    *SupportOption `bson:"chaperone,omitempty" json:"chaperone,omitempty"`
	Transporter  *SupportOption `bson:"transporter,omitempty" json:"transporter,omitempty"`
}
