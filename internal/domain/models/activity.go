package models

import "time"

// Activity event types.
const (
	ActivitySessionCreated = "session_created"
	ActivityTaskCompleted  = "task_completed"
	ActivityIdeaCreated    = "idea_created"
	ActivityFocusStarted   = "focus_started"
	ActivityFocusEnded     = "focus_ended"
)

// ActivityEvent is one entry in the append-only per-user activity log.
// Events are never mutated or deleted by application logic.
type ActivityEvent struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
