package analyze

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"braindumper/internal/domain/models"
)

// Fallback values applied when the model omits a field.
const (
	defaultSummary     = "Brain dump organized"
	defaultTaskTitle   = "Untitled task"
	defaultFocusReason = "No focus task identified"
)

var defaultSuggestedReplies = []string{
	"Start a focus session",
	"Break down the main task",
	"Add more thoughts",
}

// Normalize converts a raw model response into a fully-populated
// AnalysisResult. raw must be a valid JSON object; any field may be absent,
// null, or empty and is replaced with its fallback. The session ID and
// createdAt are generated fresh from now, never taken from the input.
func Normalize(raw []byte, now time.Time) *models.AnalysisResult {
	root := gjson.ParseBytes(raw)

	result := &models.AnalysisResult{
		SessionID:        fmt.Sprintf("sess_%d", now.UnixMilli()),
		Summary:          stringOr(root.Get("summary"), defaultSummary),
		Sections:         normalizeSections(root.Get("sections")),
		Tasks:            normalizeTasks(root.Get("tasks")),
		CurrentFocus:     normalizeFocus(root.Get("currentFocus")),
		Insights:         stringSlice(root.Get("insights")),
		SuggestedReplies: stringSlice(root.Get("suggestedReplies")),
		CreatedAt:        now.UTC().Format(time.RFC3339),
	}

	if len(result.SuggestedReplies) == 0 {
		result.SuggestedReplies = append([]string(nil), defaultSuggestedReplies...)
	}

	return result
}

func normalizeSections(v gjson.Result) []models.AnalysisSection {
	sections := []models.AnalysisSection{}
	if !v.IsArray() {
		return sections
	}
	for _, s := range v.Array() {
		sections = append(sections, models.AnalysisSection{
			Title: s.Get("title").String(),
			Items: stringSlice(s.Get("items")),
		})
	}
	return sections
}

func normalizeTasks(v gjson.Result) []models.AnalysisTask {
	tasks := []models.AnalysisTask{}
	if !v.IsArray() {
		return tasks
	}
	for i, t := range v.Array() {
		tasks = append(tasks, models.AnalysisTask{
			ID:          stringOr(t.Get("id"), fmt.Sprintf("task_%d", i+1)),
			Title:       stringOr(t.Get("title"), defaultTaskTitle),
			Description: t.Get("description").String(),
			Status:      stringOr(t.Get("status"), models.AnalysisStatusTodo),
			Bucket:      stringOr(t.Get("bucket"), models.BucketLater),
			Priority:    stringOr(t.Get("priority"), models.PriorityMedium),
			Category:    stringPtr(t.Get("category")),
			DueDate:     stringPtr(t.Get("dueDate")),
			Subtasks:    stringSlice(t.Get("subtasks")),
			OrderIndex:  i,
		})
	}
	return tasks
}

func normalizeFocus(v gjson.Result) models.CurrentFocus {
	if !v.IsObject() {
		return models.CurrentFocus{TaskID: nil, Reason: defaultFocusReason}
	}
	return models.CurrentFocus{
		TaskID: stringPtr(v.Get("taskId")),
		Reason: stringOr(v.Get("reason"), defaultFocusReason),
	}
}

// stringOr returns the field's string value, or fallback when the field is
// absent, null, or empty.
func stringOr(v gjson.Result, fallback string) string {
	if s := v.String(); s != "" {
		return s
	}
	return fallback
}

// stringPtr returns a pointer to the field's string value, or nil when the
// field is absent, null, or empty.
func stringPtr(v gjson.Result) *string {
	if s := v.String(); s != "" {
		return &s
	}
	return nil
}

func stringSlice(v gjson.Result) []string {
	out := []string{}
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		out = append(out, item.String())
	}
	return out
}
