package models

import "time"

// ExaminerAvailabilityOption is one examiner's free and eligible state
// for one slot, with the support providers simultaneously free for the
// examiner's provider group when the examination requires them.
type ExaminerAvailabilityOption struct {
	ExaminerID        string          `json:"examinerId"`
	ExaminerName      string          `json:"examinerName"`
	ProviderID        string          `json:"providerId"`
	Specialty         string          `json:"specialty,omitempty"`
	Clinic            string          `json:"clinic,omitempty"`
	Interpreters      []SupportOption `json:"interpreters,omitempty"`
	Chaperones        []SupportOption `json:"chaperones,omitempty"`
	Transporters      []SupportOption `json:"transporters,omitempty"`
	IsPreviousBooking bool            `json:"isPreviousBooking,omitempty"`
}

// SlotAvailability is a concrete bookable interval. Start and End are
// UTC with minute precision; End-Start equals the configured slot
// duration.
type SlotAvailability struct {
	Start     time.Time                    `json:"start"`
	End       time.Time                    `json:"end"`
	Examiners []ExaminerAvailabilityOption `json:"examiners"`
}

// DayAvailability owns the slots of one calendar day. Days whose slots
// all filtered out are not rendered at all.
type DayAvailability struct {
	Date    string             `json:"date"` // "2006-01-02"
	Weekday string             `json:"weekday"`
	Slots   []SlotAvailability `json:"slots"`
}

// AvailableExaminersResult is the full computed surface for one
// examination. It is produced fresh per request and read-only for the
// session; pagination and selection state live outside it.
type AvailableExaminersResult struct {
	ExamID              string               `json:"examId"`
	StartDate           string               `json:"startDate"`
	EndDate             string               `json:"endDate"`
	DueDate             string               `json:"dueDate,omitempty"`
	Days                []DayAvailability    `json:"days"`
	Settings            AvailabilitySettings `json:"settings"`
	ServiceRequirements ServiceRequirements  `json:"serviceRequirements"`
}
