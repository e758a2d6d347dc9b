package ports

import (
	"context"
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// TaskFilter narrows a task list query. EmployeeID is always required;
// the other fields are optional. DateFrom/DateTo bound the task date as a
// half-open interval [DateFrom, DateTo).
type TaskFilter struct {
	EmployeeID string
	ProjectID  string
	Status     domain.TaskStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}

// TaskStats holds the per-employee count summary.
type TaskStats struct {
	Total    int64 `json:"totalTasks"`
	Pending  int64 `json:"pendingTasks"`
	Working  int64 `json:"workingTasks"`
	Done     int64 `json:"completedTasks"`
	DueToday int64 `json:"todayTasks"`
}

// TaskRepository defines owner-scoped persistence for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id, employeeID string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id, employeeID string) error
	CountByProject(ctx context.Context, projectID, employeeID string) (int64, error)
	// Stats counts the employee's tasks in total, per status, and with a
	// date inside [dayStart, dayEnd).
	Stats(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*TaskStats, error)
}
