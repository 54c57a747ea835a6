package trial

// Placeholder dashboard figures. The matching-trial count, profile
// completion percentage and last-activity label are static display values,
// not derived from session state.
const (
	placeholderMatchingTrials    = 5
	placeholderProfileCompletion = 75
	placeholderLastActivity      = "Today"

	dashboardRecentLimit = 4
)

// Summary is the patient dashboard read model.
type Summary struct {
	AppliedTrials     int        `json:"applied_trials"`
	MatchingTrials    int        `json:"matching_trials"`
	ProfileCompletion int        `json:"profile_completion"`
	LastActivity      string     `json:"last_activity"`
	RecentActivities  []Activity `json:"recent_activities"`
}

// BuildSummary combines the application store and the activity feed into the
// dashboard view. Only the applied count and the recent activities are real
// data.
func BuildSummary(s *Session) Summary {
	return Summary{
		AppliedTrials:     s.ApplicationsCount(),
		MatchingTrials:    placeholderMatchingTrials,
		ProfileCompletion: placeholderProfileCompletion,
		LastActivity:      placeholderLastActivity,
		RecentActivities:  s.RecentActivities(dashboardRecentLimit),
	}
}
