package dto

import (
	"time"
)

// CreateTrialRequest is the admin catalog-entry payload.
type CreateTrialRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description" validate:"omitempty"`
	Phase        string `json:"phase" validate:"required"`
	Condition    string `json:"condition" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Participants int    `json:"participants" validate:"omitempty,gte=0"`
	Duration     string `json:"duration" validate:"omitempty"`
}

type TrialResponse struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Phase        string    `json:"phase"`
	Condition    string    `json:"condition"`
	Location     string    `json:"location"`
	Participants int       `json:"participants"`
	Duration     string    `json:"duration,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddApplicationRequest adds a trial application to the patient's session.
type AddApplicationRequest struct {
	TrialName string `json:"trial_name" validate:"required"`
	TrialID   string `json:"trial_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending approved rejected under_review"`
	Phase     string `json:"phase" validate:"omitempty"`
	Condition string `json:"condition" validate:"omitempty"`
	Location  string `json:"location" validate:"omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected under_review"`
}
