package models

import "time"

// Idea is a saved specification document generated from a short idea
// description. Content is immutable after creation; a regenerate-and-save
// produces a new record.
type Idea struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Title             string    `json:"title"`
	RawInput          string    `json:"rawInput"`
	GeneratedMarkdown string    `json:"generatedMarkdown"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
