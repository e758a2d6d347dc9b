package ports

import (
	"context"
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// CreateStepInput describes one step supplied at workflow creation.
type CreateStepInput struct {
	Title       string
	Description string
	Order       int
	AssigneeID  string
	DueDate     *time.Time
	Notes       string
}

// CreateWorkflowInput carries the fields accepted when creating a workflow.
type CreateWorkflowInput struct {
	Title       string
	Description string
	Category    string
	Priority    domain.Priority
	AssignedTo  []string
	Steps       []CreateStepInput
	DueDate     *time.Time
	Tags        []string
	IsPublic    bool
}

// UpdateWorkflowInput applies partial-update semantics: nil fields leave
// the stored value untouched. Steps are not updatable here; they change
// only through UpdateStep.
type UpdateWorkflowInput struct {
	Title       *string
	Description *string
	Status      *domain.WorkflowStatus
	Priority    *domain.Priority
	Category    *string
	AssignedTo  []string
	DueDate     *time.Time
	Tags        []string
	IsPublic    *bool
}

// UpdateStepInput mutates a single step. Notes are replaced only when a
// non-empty value is supplied.
type UpdateStepInput struct {
	Status domain.StepStatus
	Notes  string
}

// ListWorkflowsInput carries the list endpoint's filters and pagination.
type ListWorkflowsInput struct {
	Status   domain.WorkflowStatus
	Priority domain.Priority
	Category string
	Search   string
	Page     int
	Limit    int
}

// ListWorkflowsResult is returned by List.
type ListWorkflowsResult struct {
	Items      []domain.Workflow
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// WorkflowService defines use-case operations for workflows, all gated by
// the visibility policy.
type WorkflowService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateWorkflowInput) (*domain.Workflow, error)
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Workflow, error)
	List(ctx context.Context, principal domain.Principal, input ListWorkflowsInput) (*ListWorkflowsResult, error)
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateWorkflowInput) (*domain.Workflow, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
	UpdateStep(ctx context.Context, principal domain.Principal, workflowID, stepID string, input UpdateStepInput) (*domain.Workflow, error)
	AddComment(ctx context.Context, principal domain.Principal, workflowID, text string) (*domain.Workflow, error)
	Stats(ctx context.Context, principal domain.Principal) (*WorkflowStats, error)
}
