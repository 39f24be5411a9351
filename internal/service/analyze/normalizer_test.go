package analyze

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"braindumper/internal/domain/models"
)

var testNow = time.Date(2024, 5, 3, 10, 30, 0, 0, time.UTC)

func TestNormalizeFullResponse(t *testing.T) {
	raw := []byte(`{
		"summary": "You have a busy week with exams and a side project.",
		"sections": [
			{"title": "📚 Study", "items": ["OS assignment", "Linear algebra review"]},
			{"title": "💡 Ideas", "items": ["Habit tracker app"]}
		],
		"tasks": [
			{
				"id": "task_os",
				"title": "Finish OS assignment",
				"description": "Due Friday, mentioned as the most stressful item.",
				"status": "in_progress",
				"bucket": "now",
				"priority": "high",
				"category": "Study",
				"dueDate": "2024-05-05",
				"subtasks": ["Read chapter 4", "Write scheduler section"]
			}
		],
		"currentFocus": {"taskId": "task_os", "reason": "Explicit deadline and high stress."},
		"insights": ["You seem stressed about deadlines."],
		"suggestedReplies": ["Start now", "Split it up"]
	}`)

	result := Normalize(raw, testNow)

	if result.SessionID != fmt.Sprintf("sess_%d", testNow.UnixMilli()) {
		t.Errorf("sessionId = %q", result.SessionID)
	}
	if result.CreatedAt != "2024-05-03T10:30:00Z" {
		t.Errorf("createdAt = %q", result.CreatedAt)
	}
	if result.Summary != "You have a busy week with exams and a side project." {
		t.Errorf("summary = %q", result.Summary)
	}
	if len(result.Sections) != 2 || result.Sections[0].Title != "📚 Study" {
		t.Errorf("sections = %+v", result.Sections)
	}

	if len(result.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(result.Tasks))
	}
	task := result.Tasks[0]
	if task.ID != "task_os" || task.Title != "Finish OS assignment" {
		t.Errorf("task identity = %q / %q", task.ID, task.Title)
	}
	if task.Status != "in_progress" || task.Bucket != "now" || task.Priority != "high" {
		t.Errorf("task classification = %q/%q/%q", task.Status, task.Bucket, task.Priority)
	}
	if task.Category == nil || *task.Category != "Study" {
		t.Errorf("category = %v", task.Category)
	}
	if task.DueDate == nil || *task.DueDate != "2024-05-05" {
		t.Errorf("dueDate = %v", task.DueDate)
	}
	if len(task.Subtasks) != 2 {
		t.Errorf("subtasks = %v", task.Subtasks)
	}
	if task.OrderIndex != 0 {
		t.Errorf("orderIndex = %d", task.OrderIndex)
	}

	if result.CurrentFocus.TaskID == nil || *result.CurrentFocus.TaskID != "task_os" {
		t.Errorf("currentFocus = %+v", result.CurrentFocus)
	}
	if !reflect.DeepEqual(result.SuggestedReplies, []string{"Start now", "Split it up"}) {
		t.Errorf("suggestedReplies = %v", result.SuggestedReplies)
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	result := Normalize([]byte(`{}`), testNow)

	if result.Summary != "Brain dump organized" {
		t.Errorf("summary = %q", result.Summary)
	}
	if result.Sections == nil || len(result.Sections) != 0 {
		t.Errorf("sections = %v", result.Sections)
	}
	if result.Tasks == nil || len(result.Tasks) != 0 {
		t.Errorf("tasks = %v", result.Tasks)
	}
	if result.CurrentFocus.TaskID != nil {
		t.Errorf("focus taskId = %v", result.CurrentFocus.TaskID)
	}
	if result.CurrentFocus.Reason != "No focus task identified" {
		t.Errorf("focus reason = %q", result.CurrentFocus.Reason)
	}
	if result.Insights == nil || len(result.Insights) != 0 {
		t.Errorf("insights = %v", result.Insights)
	}
	want := []string{"Start a focus session", "Break down the main task", "Add more thoughts"}
	if !reflect.DeepEqual(result.SuggestedReplies, want) {
		t.Errorf("suggestedReplies = %v", result.SuggestedReplies)
	}
}

func TestNormalizeTaskDefaults(t *testing.T) {
	raw := []byte(`{"tasks": [{}, {"id": "", "title": null, "category": ""}, {"title": "Real task"}]}`)

	result := Normalize(raw, testNow)
	if len(result.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(result.Tasks))
	}

	for i, task := range result.Tasks[:2] {
		wantID := fmt.Sprintf("task_%d", i+1)
		if task.ID != wantID {
			t.Errorf("task %d id = %q, want %q", i, task.ID, wantID)
		}
		if task.Title != "Untitled task" {
			t.Errorf("task %d title = %q", i, task.Title)
		}
		if task.Status != models.AnalysisStatusTodo {
			t.Errorf("task %d status = %q", i, task.Status)
		}
		if task.Bucket != models.BucketLater {
			t.Errorf("task %d bucket = %q", i, task.Bucket)
		}
		if task.Priority != models.PriorityMedium {
			t.Errorf("task %d priority = %q", i, task.Priority)
		}
		if task.Category != nil || task.DueDate != nil {
			t.Errorf("task %d category/dueDate = %v/%v", i, task.Category, task.DueDate)
		}
		if task.Subtasks == nil || len(task.Subtasks) != 0 {
			t.Errorf("task %d subtasks = %v", i, task.Subtasks)
		}
	}

	for i, task := range result.Tasks {
		if task.OrderIndex != i {
			t.Errorf("task %d orderIndex = %d", i, task.OrderIndex)
		}
	}

	if result.Tasks[2].Title != "Real task" || result.Tasks[2].ID != "task_3" {
		t.Errorf("task 3 = %+v", result.Tasks[2])
	}
}

func TestNormalizeFocusWithoutReason(t *testing.T) {
	raw := []byte(`{"currentFocus": {"taskId": "task_1"}}`)

	result := Normalize(raw, testNow)
	if result.CurrentFocus.TaskID == nil || *result.CurrentFocus.TaskID != "task_1" {
		t.Errorf("taskId = %v", result.CurrentFocus.TaskID)
	}
	if result.CurrentFocus.Reason != "No focus task identified" {
		t.Errorf("reason = %q", result.CurrentFocus.Reason)
	}
}
