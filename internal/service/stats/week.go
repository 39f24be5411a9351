package stats

import (
	"time"

	"braindumper/internal/domain/models"
)

// WeeklyCounts holds the counts of records falling inside the current
// calendar week.
type WeeklyCounts struct {
	ThisWeekSessions  int
	ThisWeekTasks     int
	ThisWeekCompleted int
}

// StartOfWeek returns the most recent Sunday at 00:00:00 in now's location.
func StartOfWeek(now time.Time) time.Time {
	daysBack := int(now.Weekday()) // Sunday == 0
	day := now.AddDate(0, 0, -daysBack)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// WeeklyWindow counts sessions created, tasks created, and tasks completed
// on or after the week boundary. The boundary instant itself is inside the
// window. A completed task without completedAt is excluded; completedAt is
// authoritative.
func WeeklyWindow(boundary time.Time, sessions []models.Session, tasks []models.Task) WeeklyCounts {
	var counts WeeklyCounts

	for _, session := range sessions {
		if !session.CreatedAt.Before(boundary) {
			counts.ThisWeekSessions++
		}
	}

	for _, task := range tasks {
		if !task.CreatedAt.Before(boundary) {
			counts.ThisWeekTasks++
		}
		if task.Status == models.TaskStatusCompleted &&
			task.CompletedAt != nil &&
			!task.CompletedAt.Before(boundary) {
			counts.ThisWeekCompleted++
		}
	}

	return counts
}
