package models

// ServiceRequirements are the per-examination flags that make a slot
// bookable only when the matching support provider is simultaneously
// free. A false flag imposes no constraint.
type ServiceRequirements struct {
	InterpreterRequired bool `bson:"interpreterRequired" json:"interpreterRequired"`
	ChaperoneRequired   bool `bson:"chaperoneRequired" json:"chaperoneRequired"`
	TransportRequired   bool `bson:"transportRequired" json:"transportRequired"`
}

// Examination is the case record availability is computed for. Booking
// holds the prior reservation for edit-in-place flows; Appointment is
// the committed snapshot, written asynchronously after confirmation.
type Examination struct {
	ID           string               `bson:"id" json:"id"`
	ClaimantID   string               `bson:"claimantId" json:"claimantId"`
	Specialty    string               `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Region       string               `bson:"region,omitempty" json:"region,omitempty"`
	DueDate      string               `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Requirements ServiceRequirements  `bson:"serviceRequirements" json:"serviceRequirements"`
	Booking      *ExistingBooking     `bson:"booking,omitempty" json:"booking,omitempty"`
	Appointment  *SelectedAppointment `bson:"appointment,omitempty" json:"appointment,omitempty"`
}
