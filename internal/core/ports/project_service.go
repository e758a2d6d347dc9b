package ports

import (
	"context"
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// CreateProjectInput carries the fields accepted when creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
	ClientName  string
	Priority    domain.Priority
	EndDate     *time.Time
}

// UpdateProjectInput applies partial-update semantics: nil fields leave the
// stored value untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	ClientName  *string
	Status      *domain.ProjectStatus
	Priority    *domain.Priority
	EndDate     *time.Time
}

// ProjectService defines use-case operations for projects. All operations
// are scoped to the calling principal's ownership.
type ProjectService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, principal domain.Principal, id string) (*domain.Project, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.Project, error)
	Update(ctx context.Context, principal domain.Principal, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, principal domain.Principal, id string) error
}
