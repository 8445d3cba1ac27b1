package availability

import (
	"testing"

	"medexam/models"
)

func TestEligible(t *testing.T) {
	withAll := models.ExaminerAvailabilityOption{
		Interpreters: []models.SupportOption{{ID: "I1"}},
		Chaperones:   []models.SupportOption{{ID: "C1"}},
		Transporters: []models.SupportOption{{ID: "T1"}},
	}
	withNone := models.ExaminerAvailabilityOption{}

	cases := []struct {
		name string
		opt  models.ExaminerAvailabilityOption
		reqs models.ServiceRequirements
		want bool
	}{
		{"no requirements, no support", withNone, models.ServiceRequirements{}, true},
		{"all required, all present", withAll, models.ServiceRequirements{InterpreterRequired: true, ChaperoneRequired: true, TransportRequired: true}, true},
		{"interpreter required, missing", withNone, models.ServiceRequirements{InterpreterRequired: true}, false},
		{"chaperone required, missing", withNone, models.ServiceRequirements{ChaperoneRequired: true}, false},
		{"transport required, missing", withNone, models.ServiceRequirements{TransportRequired: true}, false},
		{
			"independent dimensions: interpreter present, chaperone missing",
			models.ExaminerAvailabilityOption{Interpreters: []models.SupportOption{{ID: "I1"}}},
			models.ServiceRequirements{InterpreterRequired: true, ChaperoneRequired: true},
			false,
		},
	}
	for _, tc := range cases {
		if got := Eligible(tc.opt, tc.reqs); got != tc.want {
			t.Errorf("%s: Eligible = %v; want %v", tc.name, got, tc.want)
		}
	}
}
