package ports

import (
	"context"
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   string
	DaysSpent   float64
	Date        *time.Time
	Status      domain.TaskStatus
	Priority    domain.Priority
	Notes       string
}

// UpdateTaskInput applies partial-update semantics: nil fields leave the
// stored value untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DaysSpent   *float64
	Date        *time.Time
	Status      *domain.TaskStatus
	Priority    *domain.Priority
	Notes       *string
}

// ListTasksInput carries the optional filters of the task list endpoint.
// Date selects tasks whose date falls on that calendar day, server-local.
type ListTasksInput struct {
	ProjectID string
	Status    domain.TaskStatus
	Date      *time.Time
}

// TaskService defines use-case operations for tasks, all owner-scoped.
type TaskService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateTaskInput) (*domain.Task, error)
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Task, error)
	List(ctx context.Context, principal domain.Principal, input ListTasksInput) ([]domain.Task, error)
	ListByProject(ctx context.Context, principal domain.Principal, projectID string) ([]domain.Task, error)
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
	Stats(ctx context.Context, principal domain.Principal) (*TaskStats, error)
}
