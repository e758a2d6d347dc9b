package ports

import (
	"context"
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// WorkflowListFilter narrows a workflow list query. The scope restricts
// results to records the viewer may see; the restriction is applied in the
// query itself, never by post-filtering fetched records.
type WorkflowListFilter struct {
	Scope    domain.WorkflowScope
	Status   domain.WorkflowStatus
	Priority domain.Priority
	Category string
	// Search is a case-insensitive substring match over title and description.
	Search string
	Page   int
	Limit  int
}

// WorkflowStats holds the visibility-scoped count summary.
type WorkflowStats struct {
	Total      int64             `json:"totalWorkflows"`
	Active     int64             `json:"activeWorkflows"`
	Completed  int64             `json:"completedWorkflows"`
	Overdue    int64             `json:"overdueWorkflows"`
	ByStatus   map[string]int64  `json:"statusStats"`
	ByPriority map[string]int64  `json:"priorityStats"`
	Recent     []domain.Workflow `json:"recentWorkflows"`
}

// WorkflowRepository defines persistence for workflows. FindByID is not
// visibility-filtered: the service needs the record to distinguish a
// forbidden access from a missing one.
type WorkflowRepository interface {
	Create(ctx context.Context, workflow *domain.Workflow) (*domain.Workflow, error)
	FindByID(ctx context.Context, id string) (*domain.Workflow, error)
	List(ctx context.Context, filter WorkflowListFilter) ([]domain.Workflow, int64, error)
	Update(ctx context.Context, workflow *domain.Workflow) (*domain.Workflow, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, scope domain.WorkflowScope, now time.Time) (*WorkflowStats, error)
}
