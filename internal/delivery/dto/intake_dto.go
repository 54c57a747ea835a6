package dto

import (
	"time"

	"github.com/google/uuid"
)

// SetDraftFieldRequest carries the raw text a patient typed into one intake
// field. An empty value clears the field, so no required tag here.
type SetDraftFieldRequest struct {
	Value string `json:"value"`
}

// TrialApplicationInfo is the optional trial metadata attached to a form
// submission when the patient applied from a specific trial listing.
type TrialApplicationInfo struct {
	TrialID   int    `json:"trial_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Phase     string `json:"phase"`
	Condition string `json:"condition"`
	Location  string `json:"location"`
}

// SubmitFormRequest is the full intake payload. Pointer fields let the
// handler tell a missing field apart from a legitimate zero.
type SubmitFormRequest struct {
	Age          *float64              `json:"Age" validate:"required"`
	Sex          *int                  `json:"Sex" validate:"required,oneof=0 1"`
	WeightKg     *float64              `json:"Weight_kg" validate:"required"`
	HeightCm     *float64              `json:"Height_cm" validate:"required"`
	BMI          *float64              `json:"BMI" validate:"required"`
	Cohort       *float64              `json:"Cohort" validate:"required"`
	ALT          *float64              `json:"ALT" validate:"required"`
	Creatinine   *float64              `json:"Creatinine" validate:"required"`
	SBP          *float64              `json:"SBP" validate:"required"`
	DBP          *float64              `json:"DBP" validate:"required"`
	HR           *float64              `json:"HR" validate:"required"`
	TempC        *float64              `json:"Temp_C" validate:"required"`
	AdverseEvent *int                  `json:"AdverseEvent" validate:"required,oneof=0 1"`
	Trial        *TrialApplicationInfo `json:"trial,omitempty" validate:"omitempty"`
}

// PatientRecordResponse is a stored intake record, field names preserved
// from the wire format.
type PatientRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Age          float64   `json:"Age"`
	Sex          int       `json:"Sex"`
	WeightKg     float64   `json:"Weight_kg"`
	HeightCm     float64   `json:"Height_cm"`
	BMI          float64   `json:"BMI"`
	Cohort       float64   `json:"Cohort"`
	ALT          float64   `json:"ALT"`
	Creatinine   float64   `json:"Creatinine"`
	SBP          float64   `json:"SBP"`
	DBP          float64   `json:"DBP"`
	HR           float64   `json:"HR"`
	TempC        float64   `json:"Temp_C"`
	AdverseEvent int       `json:"AdverseEvent"`
	Eligibility  string    `json:"eligibility,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PatientListResponse is the admin dashboard payload, patients at the top
// level as the original API served it.
type PatientListResponse struct {
	Success  bool                    `json:"success"`
	Patients []PatientRecordResponse `json:"patients"`
}

// EligibilityCheckResponse pairs a patient record with the screening result.
type EligibilityCheckResponse struct {
	Success bool                   `json:"success"`
	Patient *PatientRecordResponse `json:"patient"`
	Result  string                 `json:"result"`
}
