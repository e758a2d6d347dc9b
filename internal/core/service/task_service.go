package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worknest/workforce-api/internal/api/metrics"
	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

// TaskService implements owner-scoped task CRUD and the stats overview.
type TaskService struct {
	repo     ports.TaskRepository
	projects ports.ProjectRepository
	log      zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, projects ports.ProjectRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, projects: projects, log: log}
}

func (s *TaskService) Create(ctx context.Context, principal domain.Principal, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.DaysSpent < 0 {
		return nil, domain.NewValidationError("daysSpent cannot be negative")
	}

	// The referenced project must resolve under the caller's own ownership.
	// A project owned by someone else reads as missing.
	if _, err := s.projects.FindByID(ctx, input.ProjectID, principal.ID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, domain.NewValidationError("priority must be one of: low, medium, high, urgent")
	}

	now := time.Now().UTC()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		EmployeeID:  principal.ID,
		DaysSpent:   input.DaysSpent,
		Date:        date,
		Status:      status,
		Priority:    priority,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	task.StampCompletion(domain.TaskPending, now)

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("task", "create").Inc()
	s.log.Info().Str("task_id", created.ID).Str("project_id", created.ProjectID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id, principal.ID)
}

func (s *TaskService) List(ctx context.Context, principal domain.Principal, input ports.ListTasksInput) ([]domain.Task, error) {
	filter := ports.TaskFilter{
		EmployeeID: principal.ID,
		ProjectID:  input.ProjectID,
		Status:     input.Status,
	}
	if input.Date != nil {
		start, end := dayWindow(*input.Date)
		filter.DateFrom = &start
		filter.DateTo = &end
	}
	return s.repo.List(ctx, filter)
}

func (s *TaskService) ListByProject(ctx context.Context, principal domain.Principal, projectID string) ([]domain.Task, error) {
	if _, err := s.projects.FindByID(ctx, projectID, principal.ID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, ports.TaskFilter{EmployeeID: principal.ID, ProjectID: projectID})
}

func (s *TaskService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.repo.FindByID(ctx, id, principal.ID)
	if err != nil {
		return nil, err
	}

	prevStatus := task.Status

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DaysSpent != nil {
		if *input.DaysSpent < 0 {
			return nil, domain.NewValidationError("daysSpent cannot be negative")
		}
		task.DaysSpent = *input.DaysSpent
	}
	if input.Date != nil {
		task.Date = *input.Date
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, domain.NewValidationError("priority must be one of: low, medium, high, urgent")
		}
		task.Priority = *input.Priority
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}

	now := time.Now().UTC()
	task.StampCompletion(prevStatus, now)
	task.UpdatedAt = now

	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("task", "update").Inc()
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if _, err := s.repo.FindByID(ctx, id, principal.ID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, principal.ID); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("task", "delete").Inc()
	return nil
}

// Stats computes the count summary for the principal's own tasks. The
// "today" window is recomputed on every call in server-local time.
func (s *TaskService) Stats(ctx context.Context, principal domain.Principal) (*ports.TaskStats, error) {
	start, end := dayWindow(time.Now())
	return s.repo.Stats(ctx, principal.ID, start, end)
}

// dayWindow returns [midnight, midnight+24h) around t in t's location.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
