package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can sign in to the recruitment portal
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PatientRecords []PatientRecord `gorm:"foreignKey:UserID" json:"patient_records,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RoleAdmin   = "admin"
	RolePatient = "patient"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsPatient() bool {
	return u.Role == RolePatient
}
