package stats

import (
	"sort"
	"time"

	"braindumper/internal/domain/models"
)

// StreakDays computes the number of consecutive calendar days, counting
// backward from today, that contain at least one session. A session
// yesterday keeps the streak alive even when today has none yet; a gap of
// two or more days breaks it.
//
// Days are calendar dates in now's location. Timestamps from other zones
// are converted before truncation.
func StreakDays(sessions []models.Session, now time.Time) int {
	if len(sessions) == 0 {
		return 0
	}

	loc := now.Location()
	seen := make(map[time.Time]struct{}, len(sessions))
	for _, session := range sessions {
		seen[dateOf(session.CreatedAt.In(loc))] = struct{}{}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 0
	cursor := dateOf(now)
	for _, d := range dates {
		if d.Equal(cursor) || d.Equal(cursor.AddDate(0, 0, -1)) {
			streak++
			cursor = d
			continue
		}
		break
	}

	return streak
}

// dateOf truncates a local timestamp to its calendar date. The date is
// rebuilt in UTC so AddDate day arithmetic is immune to DST transitions.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
