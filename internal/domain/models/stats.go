package models

// DashboardStats is the derived productivity overview for one user.
// Recomputed on every request from the raw collections; never persisted.
type DashboardStats struct {
	TotalSessions         int `json:"totalSessions"`
	TotalIdeas            int `json:"totalIdeas"`
	TotalTasks            int `json:"totalTasks"`
	CompletedTasks        int `json:"completedTasks"`
	PendingTasks          int `json:"pendingTasks"`
	InProgressTasks       int `json:"inProgressTasks"`
	NowTasks              int `json:"nowTasks"`
	NextTasks             int `json:"nextTasks"`
	LaterTasks            int `json:"laterTasks"`
	TotalTimeSpentMinutes int `json:"totalTimeSpentMinutes"`
	StreakDays            int `json:"streakDays"`
	ThisWeekSessions      int `json:"thisWeekSessions"`
	ThisWeekTasks         int `json:"thisWeekTasks"`
	ThisWeekCompleted     int `json:"thisWeekCompleted"`
	CompletionRate        int `json:"completionRate"`

	RecentActivity []ActivityEvent `json:"recentActivity"`
	RecentSessions []Session       `json:"recentSessions"`
	RecentIdeas    []Idea          `json:"recentIdeas"`
}
