package stats

import "braindumper/internal/domain/models"

// TaskAggregate holds the per-status and per-bucket counts for one user's
// task collection. Status and bucket counts use exact string matching, so an
// unrecognized value simply matches no counter.
type TaskAggregate struct {
	TotalTasks            int
	CompletedTasks        int
	PendingTasks          int
	InProgressTasks       int
	NowTasks              int
	NextTasks             int
	LaterTasks            int
	TotalTimeSpentMinutes int
}

// AggregateTasks computes counts over a task collection in one pass.
// Negative time values are treated as 0.
func AggregateTasks(tasks []models.Task) TaskAggregate {
	agg := TaskAggregate{TotalTasks: len(tasks)}

	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusCompleted:
			agg.CompletedTasks++
		case models.TaskStatusPending:
			agg.PendingTasks++
		case models.TaskStatusInProgress:
			agg.InProgressTasks++
		}

		switch task.Bucket {
		case models.BucketNow:
			agg.NowTasks++
		case models.BucketNext:
			agg.NextTasks++
		case models.BucketLater:
			agg.LaterTasks++
		}

		if task.TimeSpent > 0 {
			agg.TotalTimeSpentMinutes += task.TimeSpent
		}
	}

	return agg
}
