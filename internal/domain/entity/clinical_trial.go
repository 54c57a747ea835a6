package entity

import (
	"time"
)

// ClinicalTrial is a recruiting trial in the catalog patients can browse
type ClinicalTrial struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Phase        string    `gorm:"type:varchar(50);not null;index" json:"phase"`
	Condition    string    `gorm:"type:varchar(255);not null;index" json:"condition"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`
	Participants int       `gorm:"not null;default:0" json:"participants"`
	Duration     string    `gorm:"type:varchar(100)" json:"duration,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClinicalTrial) TableName() string {
	return "clinical_trials"
}
