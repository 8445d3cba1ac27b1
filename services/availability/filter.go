package availability

import "medexam/models"

// Eligible applies the examination's service requirements to one
// examiner option. Each true flag is a hard, independent exclusion:
// the matching provider list must be non-empty. False flags impose no
// constraint. There is no ranking penalty anywhere in this engine.
func Eligible(opt models.ExaminerAvailabilityOption, reqs models.ServiceRequirements) bool {
	if reqs.InterpreterRequired && len(opt.Interpreters) == 0 {
		return false
	}
	if reqs.ChaperoneRequired && len(opt.Chaperones) == 0 {
		return false
	}
	if reqs.TransportRequired && len(opt.Transporters) == 0 {
		return false
	}
	return true
}
