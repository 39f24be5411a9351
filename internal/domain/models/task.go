package models

import "time"

// Task status values for persisted tasks.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Task bucket values - a coarse urgency classification.
const (
	BucketNow   = "now"
	BucketNext  = "next"
	BucketLater = "later"
)

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a single actionable item, created from an analysis or standalone.
// SessionID is a weak back-reference; deleting a session does not delete its
// tasks. CompletedAt is set exactly once, at the transition into "completed".
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	SessionID   string     `json:"sessionId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Bucket      string     `json:"bucket"`
	Status      string     `json:"status"`
	TimeSpent   int        `json:"timeSpentMinutes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
