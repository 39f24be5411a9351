package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"braindumper/internal/config"
	"braindumper/internal/domain"
	"braindumper/internal/domain/models"
	"braindumper/internal/domain/repositories"
	"braindumper/internal/domain/services"
)

// statsService implements the StatsService interface
type statsService struct {
	sessionRepo  repositories.SessionRepository
	taskRepo     repositories.TaskRepository
	ideaRepo     repositories.IdeaRepository
	activityRepo repositories.ActivityRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewService creates a new stats service
func NewService(
	sessionRepo repositories.SessionRepository,
	taskRepo repositories.TaskRepository,
	ideaRepo repositories.IdeaRepository,
	activityRepo repositories.ActivityRepository,
	logger *slog.Logger,
) services.StatsService {
	return &statsService{
		sessionRepo:  sessionRepo,
		taskRepo:     taskRepo,
		ideaRepo:     ideaRepo,
		activityRepo: activityRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Dashboard fetches the four collections concurrently and composes the
// derived statistics. The reads have no data dependency on each other, but
// all four must succeed before composition runs.
func (s *statsService) Dashboard(ctx context.Context, userID string) (*models.DashboardStats, error) {
	var (
		sessions []models.Session
		tasks    []models.Task
		ideas    []models.Idea
		activity []models.ActivityEvent
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		sessions, err = s.sessionRepo.List(ctx, userID, config.ListCap)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		tasks, err = s.taskRepo.List(ctx, userID, config.ListCap)
		if err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		ideas, err = s.ideaRepo.List(ctx, userID, config.IdeaListCap)
		if err != nil {
			return fmt.Errorf("load ideas: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		activity, err = s.activityRepo.Recent(ctx, userID, config.ActivityFeedLimit)
		if err != nil {
			return fmt.Errorf("load activity: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard collection read failed",
			"user_id", userID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrIncompleteInput, err)
	}

	return s.compose(sessions, tasks, ideas, activity), nil
}

// compose assembles DashboardStats from the loaded collections.
// Pure given a pinned now.
func (s *statsService) compose(
	sessions []models.Session,
	tasks []models.Task,
	ideas []models.Idea,
	activity []models.ActivityEvent,
) *models.DashboardStats {
	now := s.now()
	agg := AggregateTasks(tasks)
	weekly := WeeklyWindow(StartOfWeek(now), sessions, tasks)

	return &models.DashboardStats{
		TotalSessions:         len(sessions),
		TotalIdeas:            len(ideas),
		TotalTasks:            agg.TotalTasks,
		CompletedTasks:        agg.CompletedTasks,
		PendingTasks:          agg.PendingTasks,
		InProgressTasks:       agg.InProgressTasks,
		NowTasks:              agg.NowTasks,
		NextTasks:             agg.NextTasks,
		LaterTasks:            agg.LaterTasks,
		TotalTimeSpentMinutes: agg.TotalTimeSpentMinutes,
		StreakDays:            StreakDays(sessions, now),
		ThisWeekSessions:      weekly.ThisWeekSessions,
		ThisWeekTasks:         weekly.ThisWeekTasks,
		ThisWeekCompleted:     weekly.ThisWeekCompleted,
		CompletionRate:        completionRate(agg.CompletedTasks, agg.TotalTasks),

		RecentActivity: activity,
		RecentSessions: firstN(sessions, config.RecentItemsLimit),
		RecentIdeas:    firstN(ideas, config.RecentItemsLimit),
	}
}

// completionRate returns the rounded percentage of completed tasks, or 0
// when there are no tasks at all.
func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
