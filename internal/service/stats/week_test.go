package stats

import (
	"testing"
	"time"

	"braindumper/internal/domain/models"
)

func TestStartOfWeek(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "friday maps back to sunday",
			now:  time.Date(2024, 5, 3, 15, 30, 0, 0, loc), // Friday
			want: time.Date(2024, 4, 28, 0, 0, 0, 0, loc),  // previous Sunday
		},
		{
			name: "sunday maps to itself at midnight",
			now:  time.Date(2024, 4, 28, 23, 59, 59, 0, loc),
			want: time.Date(2024, 4, 28, 0, 0, 0, 0, loc),
		},
		{
			name: "monday just after midnight",
			now:  time.Date(2024, 4, 29, 0, 0, 1, 0, loc),
			want: time.Date(2024, 4, 28, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWeek(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestWeeklyWindowBoundary(t *testing.T) {
	boundary := time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)
	completed := models.TaskStatusCompleted

	atBoundary := boundary
	justBefore := boundary.Add(-time.Microsecond)
	after := boundary.Add(48 * time.Hour)

	tasks := []models.Task{
		{Status: completed, CreatedAt: after, CompletedAt: &atBoundary},
		{Status: completed, CreatedAt: justBefore, CompletedAt: &justBefore},
		{Status: completed, CreatedAt: after, CompletedAt: nil}, // legacy: no completedAt
		{Status: models.TaskStatusPending, CreatedAt: after},
	}
	sessions := []models.Session{
		{CreatedAt: atBoundary},
		{CreatedAt: justBefore},
		{CreatedAt: after},
	}

	counts := WeeklyWindow(boundary, sessions, tasks)

	if counts.ThisWeekSessions != 2 {
		t.Errorf("ThisWeekSessions = %d, want 2", counts.ThisWeekSessions)
	}
	if counts.ThisWeekTasks != 3 {
		t.Errorf("ThisWeekTasks = %d, want 3", counts.ThisWeekTasks)
	}
	// boundary instant included, microsecond before excluded, nil completedAt excluded
	if counts.ThisWeekCompleted != 1 {
		t.Errorf("ThisWeekCompleted = %d, want 1", counts.ThisWeekCompleted)
	}
}
