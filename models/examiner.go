package models

// Examiner is a clinician who can be booked for an examination.
// ProviderID identifies the provider organisation the examiner works
// under; interpreters, chaperones and transporters are grouped by the
// same ID.
type Examiner struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	ProviderID string   `bson:"providerId" json:"providerId"`
	Specialty  string   `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Clinic     string   `bson:"clinic,omitempty" json:"clinic,omitempty"`
	Region     string   `bson:"region,omitempty" json:"region,omitempty"`
	Schedule   Schedule `bson:"schedule" json:"schedule"`
}

// Support provider kinds.
const (
	SupportKindInterpreter = "interpreter"
	SupportKindChaperone   = "chaperone"
	SupportKindTransporter = "transporter"
)

// SupportProvider is an interpreter, chaperone or transporter attached
// to a provider group, with the same schedule shape as an examiner.
type SupportProvider struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	Kind       string   `bson:"kind" json:"kind"`
	ProviderID string   `bson:"providerId" json:"providerId"`
	Region     string   `bson:"region,omitempty" json:"region,omitempty"`
	Schedule   Schedule `bson:"schedule" json:"schedule"`
}

// SupportOption is the rendered form of a support provider free for a
// particular slot.
type SupportOption struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
