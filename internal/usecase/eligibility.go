package usecase

import (
	"clinical-trial-backend/internal/domain/entity"
)

// Screening thresholds for the general trial cohort. A record passes when
// every vital and lab value sits inside its window and no adverse event was
// reported.
type screeningRule struct {
	name string
	fail func(r *entity.PatientRecord) bool
}

var screeningRules = []screeningRule{
	{"age", func(r *entity.PatientRecord) bool {
		return r.Age < 18 || r.Age > 90
	}},
	{"bmi", func(r *entity.PatientRecord) bool {
		return r.BMI < 16 || r.BMI > 40
	}},
	{"alt", func(r *entity.PatientRecord) bool {
		return r.ALT > 120
	}},
	{"creatinine", func(r *entity.PatientRecord) bool {
		return r.Creatinine > 2.0
	}},
	{"systolic_bp", func(r *entity.PatientRecord) bool {
		return r.SBP < 85 || r.SBP > 180
	}},
	{"diastolic_bp", func(r *entity.PatientRecord) bool {
		return r.DBP < 50 || r.DBP > 110
	}},
	{"heart_rate", func(r *entity.PatientRecord) bool {
		return r.HR < 45 || r.HR > 130
	}},
	{"temperature", func(r *entity.PatientRecord) bool {
		return r.TempC < 35.0 || r.TempC > 38.5
	}},
	{"adverse_event", func(r *entity.PatientRecord) bool {
		return r.AdverseEvent == 1
	}},
}

// EvaluateEligibility screens a patient record against the rule table and
// returns Accepted or Rejected. The check is deterministic: same record,
// same result.
func EvaluateEligibility(record *entity.PatientRecord) string {
	if len(FailedScreeningRules(record)) > 0 {
		return entity.EligibilityRejected
	}
	return entity.EligibilityAccepted
}

// FailedScreeningRules returns the names of the rules a record violates.
func FailedScreeningRules(record *entity.PatientRecord) []string {
	var failed []string
	for _, rule := range screeningRules {
		if rule.fail(record) {
			failed = append(failed, rule.name)
		}
	}
	return failed
}
