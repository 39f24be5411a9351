package models

import "time"

// Session status values.
const (
	SessionStatusActive   = "active"
	SessionStatusArchived = "archived"
)

// Session is one brain-dump session. The raw dump text is immutable after
// creation; only the status may change afterwards.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Title        string    `json:"title"`
	RawDump      string    `json:"rawDump"`
	Summary      string    `json:"summary"`
	Sections     string    `json:"sections"` // serialized JSON list of sections
	Insights     string    `json:"insights"` // serialized JSON list of strings
	CurrentFocus string    `json:"currentFocus"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
