package trial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Seed(t *testing.T) {
	s := NewSession()

	assert.Equal(t, 1, s.ApplicationsCount())
	assert.Equal(t, 4, s.ActivitiesCount())

	apps := s.Applications()
	require.Len(t, apps, 1)
	assert.Equal(t, "General Disease Trial", apps[0].TrialName)
	assert.Equal(t, "GDT-2024-001", apps[0].TrialID)
	assert.Equal(t, StatusPending, apps[0].Status)
}

func TestSession_AddApplication(t *testing.T) {
	t.Run("increments both store and feed by one", func(t *testing.T) {
		s := NewSession()
		appsBefore := s.ApplicationsCount()
		actsBefore := s.ActivitiesCount()

		app := s.AddApplication(ApplicationInput{
			TrialName: "Migraine Study",
			TrialID:   "3",
			Status:    StatusPending,
			Phase:     "Phase III",
			Condition: "Migraine",
			Location:  "X",
		})

		assert.Equal(t, appsBefore+1, s.ApplicationsCount())
		assert.Equal(t, actsBefore+1, s.ActivitiesCount())
		assert.NotEmpty(t, app.ID)
		assert.False(t, app.AppliedDate.IsZero())
	})

	t.Run("cascaded activity describes the application", func(t *testing.T) {
		s := NewSession()
		s.AddApplication(ApplicationInput{
			TrialName: "Migraine Study",
			TrialID:   "3",
			Status:    StatusPending,
			Phase:     "Phase III",
			Condition: "Migraine",
			Location:  "X",
		})

		newest := s.RecentActivities(1)
		require.Len(t, newest, 1)
		assert.Equal(t, "Applied to Migraine Study", newest[0].Title)
		assert.Equal(t, "Successfully submitted application for Phase III Migraine Study", newest[0].Description)
		assert.Equal(t, ActivityApplication, newest[0].Type)
		assert.Equal(t, ActivityStatusPending, newest[0].Status)
		assert.Equal(t, "3", newest[0].TrialID)
	})

	t.Run("new application is prepended", func(t *testing.T) {
		s := NewSession()
		added := s.AddApplication(ApplicationInput{TrialName: "T", TrialID: "9", Status: StatusPending})

		apps := s.Applications()
		assert.Equal(t, added.ID, apps[0].ID)
	})
}

func TestSession_UpdateApplicationStatus(t *testing.T) {
	t.Run("replaces status and cascades a status_update activity", func(t *testing.T) {
		s := NewSession()
		app := s.AddApplication(ApplicationInput{
			TrialName: "Hypertension Trial",
			TrialID:   "2",
			Status:    StatusPending,
			Phase:     "Phase II",
		})
		actsBefore := s.ActivitiesCount()

		ok := s.UpdateApplicationStatus(app.ID, StatusApproved)
		require.True(t, ok)

		apps := s.Applications()
		assert.Equal(t, StatusApproved, apps[0].Status)
		assert.Equal(t, actsBefore+1, s.ActivitiesCount())

		newest := s.RecentActivities(1)[0]
		assert.Equal(t, ActivityStatusUpdate, newest.Type)
		assert.Equal(t, "Hypertension Trial - Application approved", newest.Title)
		assert.Equal(t, "Your application for Hypertension Trial status has been updated to approved", newest.Description)
		assert.Equal(t, ActivityStatusCompleted, newest.Status)
	})

	t.Run("rejected maps to rejected activity status", func(t *testing.T) {
		s := NewSession()
		app := s.AddApplication(ApplicationInput{TrialName: "T", TrialID: "1", Status: StatusPending})

		require.True(t, s.UpdateApplicationStatus(app.ID, StatusRejected))
		newest := s.RecentActivities(1)[0]
		assert.Equal(t, "T - Application rejected", newest.Title)
		assert.Equal(t, ActivityStatusRejected, newest.Status)
	})

	t.Run("under_review maps to pending activity status", func(t *testing.T) {
		s := NewSession()
		app := s.AddApplication(ApplicationInput{TrialName: "T", TrialID: "1", Status: StatusPending})

		require.True(t, s.UpdateApplicationStatus(app.ID, StatusUnderReview))
		newest := s.RecentActivities(1)[0]
		assert.Equal(t, "T - Application under review", newest.Title)
		assert.Equal(t, ActivityStatusPending, newest.Status)
	})

	t.Run("transitions are unconstrained", func(t *testing.T) {
		s := NewSession()
		app := s.AddApplication(ApplicationInput{TrialName: "T", TrialID: "1", Status: StatusPending})

		require.True(t, s.UpdateApplicationStatus(app.ID, StatusRejected))
		require.True(t, s.UpdateApplicationStatus(app.ID, StatusApproved))
		require.True(t, s.UpdateApplicationStatus(app.ID, StatusPending))
		assert.Equal(t, StatusPending, s.Applications()[0].Status)
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		s := NewSession()
		appsBefore := s.ApplicationsCount()
		actsBefore := s.ActivitiesCount()

		ok := s.UpdateApplicationStatus("does-not-exist", StatusApproved)
		assert.False(t, ok)
		assert.Equal(t, appsBefore, s.ApplicationsCount())
		assert.Equal(t, actsBefore, s.ActivitiesCount())
	})

	t.Run("applied date is untouched", func(t *testing.T) {
		s := NewSession()
		app := s.AddApplication(ApplicationInput{TrialName: "T", TrialID: "1", Status: StatusPending})

		require.True(t, s.UpdateApplicationStatus(app.ID, StatusApproved))
		assert.Equal(t, app.AppliedDate, s.Applications()[0].AppliedDate)
	})
}

func TestSession_RecentActivities(t *testing.T) {
	t.Run("never returns more than the limit", func(t *testing.T) {
		s := NewSession()
		assert.LessOrEqual(t, len(s.RecentActivities(3)), 3)
	})

	t.Run("sorted descending by date", func(t *testing.T) {
		s := NewSession()
		s.AddActivity(ActivityInput{Type: ActivityProfile, Title: "a", Status: ActivityStatusCompleted})
		s.AddActivity(ActivityInput{Type: ActivityProfile, Title: "b", Status: ActivityStatusCompleted})

		recent := s.RecentActivities(10)
		for i := 1; i < len(recent); i++ {
			assert.False(t, recent[i].Date.After(recent[i-1].Date),
				"activity %d newer than activity %d", i, i-1)
		}
	})

	t.Run("zero limit falls back to default", func(t *testing.T) {
		s := NewSession()
		for i := 0; i < 10; i++ {
			s.AddActivity(ActivityInput{Type: ActivityMatch, Title: "m", Status: ActivityStatusNew})
		}
		assert.Len(t, s.RecentActivities(0), DefaultRecentLimit)
	})

	t.Run("dates honored over insertion order", func(t *testing.T) {
		s := NewSession()
		base := time.Now()

		// Insert out of order by backdating the clock.
		s.now = func() time.Time { return base.Add(time.Hour) }
		s.AddActivity(ActivityInput{Type: ActivityMatch, Title: "future", Status: ActivityStatusNew})
		s.now = func() time.Time { return base }
		s.AddActivity(ActivityInput{Type: ActivityMatch, Title: "present", Status: ActivityStatusNew})

		recent := s.RecentActivities(2)
		require.Len(t, recent, 2)
		assert.Equal(t, "future", recent[0].Title)
		assert.Equal(t, "present", recent[1].Title)
	})
}

func TestSession_Draft(t *testing.T) {
	t.Run("reset replaces the draft", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.Draft().SetField("Age", "55"))
		require.NotNil(t, s.Draft().Snapshot().Age)

		s.ResetDraft()
		assert.Nil(t, s.Draft().Snapshot().Age)
	})
}
