package entity

import (
	"time"

	"github.com/google/uuid"
)

// Eligibility result values written back by the screening check
const (
	EligibilityAccepted = "Accepted"
	EligibilityRejected = "Rejected"
)

// PatientRecord is a submitted intake form. Field names mirror the intake
// form fields; Eligibility stays empty until an admin runs the check.
type PatientRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Age          float64   `gorm:"not null" json:"Age"`
	Sex          int       `gorm:"not null" json:"Sex"`
	WeightKg     float64   `gorm:"column:weight_kg;not null" json:"Weight_kg"`
	HeightCm     float64   `gorm:"column:height_cm;not null" json:"Height_cm"`
	BMI          float64   `gorm:"column:bmi;not null" json:"BMI"`
	Cohort       float64   `gorm:"not null" json:"Cohort"`
	ALT          float64   `gorm:"column:alt;not null" json:"ALT"`
	Creatinine   float64   `gorm:"not null" json:"Creatinine"`
	SBP          float64   `gorm:"column:sbp;not null" json:"SBP"`
	DBP          float64   `gorm:"column:dbp;not null" json:"DBP"`
	HR           float64   `gorm:"column:hr;not null" json:"HR"`
	TempC        float64   `gorm:"column:temp_c;not null" json:"Temp_C"`
	AdverseEvent int       `gorm:"not null" json:"AdverseEvent"`
	Eligibility  *string   `gorm:"type:varchar(20)" json:"eligibility,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientRecord) TableName() string {
	return "patient_records"
}

// IsScreened reports whether an eligibility result has been recorded.
func (p *PatientRecord) IsScreened() bool {
	return p.Eligibility != nil && *p.Eligibility != ""
}
