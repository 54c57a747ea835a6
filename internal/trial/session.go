package trial

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"clinical-trial-backend/internal/intake"

	"github.com/google/uuid"
)

// DefaultRecentLimit is how many activities RecentActivities returns when the
// caller does not say otherwise.
const DefaultRecentLimit = 5

// Session holds one signed-in patient's trial applications, activity feed and
// intake draft. Everything lives in process memory and is discarded on
// restart; nothing here is written through to the database.
//
// Applications and activities are prepended most-recent-first. An
// application mutation and its cascaded activity are two steps under one
// mutex, not a transaction.
type Session struct {
	mu           sync.Mutex
	applications []Application
	activities   []Activity
	draft        *intake.Form

	now func() time.Time
}

// NewSession returns a session seeded with the starter application and
// activity history every fresh portal session begins with.
func NewSession() *Session {
	s := &Session{
		draft: intake.NewForm(),
		now:   time.Now,
	}
	s.seed()
	return s
}

func (s *Session) seed() {
	now := s.now()

	s.applications = []Application{
		{
			ID:          "1",
			TrialName:   "General Disease Trial",
			TrialID:     "GDT-2024-001",
			AppliedDate: now.Add(-2 * time.Hour),
			Status:      StatusPending,
			Phase:       "Phase II",
			Condition:   "General Disease",
			Location:    "New York, NY",
		},
	}

	s.activities = []Activity{
		{
			ID:          "1",
			Type:        ActivityApplication,
			Title:       "Applied to General Disease Trial",
			Description: "Successfully submitted application for Phase II General Disease Trial",
			Date:        now.Add(-2 * time.Hour),
			Status:      ActivityStatusPending,
			TrialID:     "GDT-2024-001",
			TrialName:   "General Disease Trial",
		},
		{
			ID:          "2",
			Type:        ActivityMatch,
			Title:       "New trial matches found",
			Description: "3 new clinical trials match your profile criteria",
			Date:        now.Add(-24 * time.Hour),
			Status:      ActivityStatusNew,
		},
		{
			ID:          "3",
			Type:        ActivityProfile,
			Title:       "Profile information updated",
			Description: "Medical history and contact information updated successfully",
			Date:        now.Add(-3 * 24 * time.Hour),
			Status:      ActivityStatusCompleted,
		},
		{
			ID:          "4",
			Type:        ActivityAssessment,
			Title:       "Medical assessment completed",
			Description: "Completed comprehensive medical assessment form",
			Date:        now.Add(-5 * 24 * time.Hour),
			Status:      ActivityStatusCompleted,
		},
	}
}

// AddApplication records a new application and cascades the matching
// "application" activity onto the feed.
func (s *Session) AddApplication(in ApplicationInput) Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	app := Application{
		ID:          uuid.New().String(),
		TrialName:   in.TrialName,
		TrialID:     in.TrialID,
		AppliedDate: s.now(),
		Status:      in.Status,
		Phase:       in.Phase,
		Condition:   in.Condition,
		Location:    in.Location,
	}

	s.applications = append([]Application{app}, s.applications...)

	s.addActivityLocked(ActivityInput{
		Type:        ActivityApplication,
		Title:       fmt.Sprintf("Applied to %s", in.TrialName),
		Description: fmt.Sprintf("Successfully submitted application for %s %s", in.Phase, in.TrialName),
		Status:      ActivityStatusPending,
		TrialID:     in.TrialID,
		TrialName:   in.TrialName,
	})

	return app
}

// UpdateApplicationStatus replaces the status of the application with the
// given id and cascades a "status_update" activity. An unknown id leaves the
// store and the feed untouched; the false return is the only signal.
func (s *Session) UpdateApplicationStatus(id string, status ApplicationStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.applications {
		if s.applications[i].ID != id {
			continue
		}
		s.applications[i].Status = status
		app := s.applications[i]

		s.addActivityLocked(ActivityInput{
			Type:        ActivityStatusUpdate,
			Title:       fmt.Sprintf("%s - %s", app.TrialName, statusMessages[status]),
			Description: fmt.Sprintf("Your application for %s status has been updated to %s", app.TrialName, status),
			Status:      activityStatusFor(status),
			TrialID:     app.TrialID,
			TrialName:   app.TrialName,
		})
		return true
	}
	return false
}

// AddActivity appends a standalone feed entry.
func (s *Session) AddActivity(in ActivityInput) Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addActivityLocked(in)
}

func (s *Session) addActivityLocked(in ActivityInput) Activity {
	act := Activity{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Date:        s.now(),
		Status:      in.Status,
		TrialID:     in.TrialID,
		TrialName:   in.TrialName,
	}
	s.activities = append([]Activity{act}, s.activities...)
	return act
}

// RecentActivities returns up to limit activities, newest first. A limit of
// zero or less falls back to DefaultRecentLimit. Order between entries with
// identical timestamps is unspecified.
func (s *Session) RecentActivities(limit int) []Activity {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Activity, len(s.activities))
	copy(out, s.activities)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Applications returns a snapshot of the application list, newest first.
func (s *Session) Applications() []Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Application, len(s.applications))
	copy(out, s.applications)
	return out
}

// ApplicationsCount returns the total number of applications, regardless of
// status.
func (s *Session) ApplicationsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.applications)
}

// ActivitiesCount returns the total number of feed entries.
func (s *Session) ActivitiesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activities)
}

// Draft returns the session's intake form draft.
func (s *Session) Draft() *intake.Form {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// ResetDraft replaces the draft with an empty form, as happens after a
// successful submission.
func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = intake.NewForm()
}
