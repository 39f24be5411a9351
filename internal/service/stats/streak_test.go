package stats

import (
	"testing"
	"time"

	"braindumper/internal/domain/models"
)

func sessionsOn(times ...time.Time) []models.Session {
	sessions := make([]models.Session, len(times))
	for i, ts := range times {
		sessions[i] = models.Session{CreatedAt: ts}
	}
	return sessions
}

func TestStreakDays(t *testing.T) {
	now := time.Date(2024, 5, 3, 14, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name     string
		sessions []models.Session
		want     int
	}{
		{
			name:     "three consecutive days ending today",
			sessions: sessionsOn(day(0), day(-1), day(-2)),
			want:     3,
		},
		{
			name:     "gap at yesterday breaks the streak",
			sessions: sessionsOn(day(0), day(-2)),
			want:     1,
		},
		{
			name:     "no sessions",
			sessions: nil,
			want:     0,
		},
		{
			name:     "yesterday only still counts",
			sessions: sessionsOn(day(-1)),
			want:     1,
		},
		{
			name:     "grace day then consecutive run",
			sessions: sessionsOn(day(-1), day(-2), day(-3)),
			want:     3,
		},
		{
			name:     "two day gap yields zero",
			sessions: sessionsOn(day(-2), day(-3)),
			want:     0,
		},
		{
			name:     "multiple sessions on one day count once",
			sessions: sessionsOn(day(0), day(0).Add(2*time.Hour), day(-1)),
			want:     2,
		},
		{
			name:     "unsorted input",
			sessions: sessionsOn(day(-2), day(0), day(-1)),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StreakDays(tt.sessions, now); got != tt.want {
				t.Errorf("StreakDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakDaysCrossZoneTimestamps(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	now := time.Date(2024, 5, 3, 1, 0, 0, 0, loc)

	// 2024-05-03 08:30 UTC is still 2024-05-03 in UTC-8
	sessions := sessionsOn(time.Date(2024, 5, 3, 8, 30, 0, 0, time.UTC))
	if got := StreakDays(sessions, now); got != 1 {
		t.Errorf("StreakDays = %d, want 1", got)
	}

	// 2024-05-03 02:00 UTC is 2024-05-02 in UTC-8: yesterday, grace applies
	sessions = sessionsOn(time.Date(2024, 5, 3, 2, 0, 0, 0, time.UTC))
	if got := StreakDays(sessions, now); got != 1 {
		t.Errorf("StreakDays across zones = %d, want 1", got)
	}
}
