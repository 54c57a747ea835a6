package trial

import (
	"time"
)

// ApplicationStatus is the review state of a trial application. Transitions
// are unconstrained: any status may follow any other.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
	StatusUnderReview ApplicationStatus = "under_review"
)

// IsValidStatus reports whether s is one of the known application statuses.
func IsValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusUnderReview:
		return true
	}
	return false
}

// Application is a trial application held in session memory. AppliedDate is
// set at creation and never changes; only Status is mutable afterwards.
type Application struct {
	ID          string            `json:"id"`
	TrialName   string            `json:"trial_name"`
	TrialID     string            `json:"trial_id"`
	AppliedDate time.Time         `json:"applied_date"`
	Status      ApplicationStatus `json:"status"`
	Phase       string            `json:"phase"`
	Condition   string            `json:"condition"`
	Location    string            `json:"location"`
}

// ApplicationInput carries the caller-supplied fields of a new application.
type ApplicationInput struct {
	TrialName string
	TrialID   string
	Status    ApplicationStatus
	Phase     string
	Condition string
	Location  string
}

// ActivityType classifies an entry in the activity feed.
type ActivityType string

const (
	ActivityApplication  ActivityType = "application"
	ActivityStatusUpdate ActivityType = "status_update"
	ActivityMatch        ActivityType = "match"
	ActivityProfile      ActivityType = "profile"
	ActivityAssessment   ActivityType = "assessment"
)

// ActivityStatus is the display state of a feed entry.
type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "pending"
	ActivityStatusCompleted ActivityStatus = "completed"
	ActivityStatusNew       ActivityStatus = "new"
	ActivityStatusApproved  ActivityStatus = "approved"
	ActivityStatusRejected  ActivityStatus = "rejected"
)

// Activity is an immutable feed entry. TrialID is a loose reference to an
// application; nothing enforces that the application still exists.
type Activity struct {
	ID          string         `json:"id"`
	Type        ActivityType   `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	Status      ActivityStatus `json:"status"`
	TrialID     string         `json:"trial_id,omitempty"`
	TrialName   string         `json:"trial_name,omitempty"`
}

// ActivityInput carries the caller-supplied fields of a new activity.
type ActivityInput struct {
	Type        ActivityType
	Title       string
	Description string
	Status      ActivityStatus
	TrialID     string
	TrialName   string
}

// statusMessages is the per-status headline used for status_update activities.
var statusMessages = map[ApplicationStatus]string{
	StatusApproved:    "Application approved",
	StatusRejected:    "Application rejected",
	StatusUnderReview: "Application under review",
	StatusPending:     "Application pending",
}

// activityStatusFor maps an application status to the feed entry's status.
func activityStatusFor(s ApplicationStatus) ActivityStatus {
	switch s {
	case StatusApproved:
		return ActivityStatusCompleted
	case StatusRejected:
		return ActivityStatusRejected
	default:
		return ActivityStatusPending
	}
}
