package ports

import (
	"context"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// ProjectRepository defines owner-scoped persistence for projects. Every
// lookup takes the owning employee id; a record under a different owner is
// indistinguishable from a missing one.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id, employeeID string) (*domain.Project, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id, employeeID string) error
}
