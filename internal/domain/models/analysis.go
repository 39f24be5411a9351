package models

// AI-side task status values. The model classifies tasks as todo/in_progress/
// done; the persistence layer uses pending/in_progress/completed.
const (
	AnalysisStatusTodo       = "todo"
	AnalysisStatusInProgress = "in_progress"
	AnalysisStatusDone       = "done"
)

// AnalysisSection groups related items from a brain dump under a heading.
type AnalysisSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// AnalysisTask is one task extracted from a brain dump by the model.
// Every field is guaranteed populated after normalization.
type AnalysisTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Bucket      string   `json:"bucket"`
	Priority    string   `json:"priority"`
	Category    *string  `json:"category"`
	DueDate     *string  `json:"dueDate"`
	Subtasks    []string `json:"subtasks"`
	OrderIndex  int      `json:"orderIndex"`
}

// CurrentFocus is the single task the analysis recommends working on next.
// TaskID may reference a task absent from the same result; consumers resolve
// a dangling reference to "no focus".
type CurrentFocus struct {
	TaskID *string `json:"taskId"`
	Reason string  `json:"reason"`
}

// AnalysisResult is the normalized shape produced from an LLM response to a
// brain dump. Transient: derived on each analysis, never stored as-is.
type AnalysisResult struct {
	SessionID        string            `json:"sessionId"`
	Summary          string            `json:"summary"`
	Sections         []AnalysisSection `json:"sections"`
	Tasks            []AnalysisTask    `json:"tasks"`
	CurrentFocus     CurrentFocus      `json:"currentFocus"`
	Insights         []string          `json:"insights"`
	SuggestedReplies []string          `json:"suggestedReplies"`
	CreatedAt        string            `json:"createdAt"`
}

// BreakdownStep is one tiny actionable step from a task breakdown.
type BreakdownStep struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	TimeEstimate string  `json:"timeEstimate"`
	Tip          *string `json:"tip"`
}

// BreakdownResult is the AI response to a task breakdown request.
type BreakdownResult struct {
	Steps         []BreakdownStep `json:"steps"`
	Encouragement string          `json:"encouragement"`
}

// HelpResult is the AI response to a "stuck on a task" help request.
type HelpResult struct {
	Tips       []string `json:"tips"`
	Motivation string   `json:"motivation"`
}
