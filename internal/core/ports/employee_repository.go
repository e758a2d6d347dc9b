package ports

import (
	"context"

	"github.com/worknest/workforce-api/internal/core/domain"
)

// EmployeeRepository defines persistence for employee accounts. Create
// returns domain.ErrEmployeeExists when the email is already taken.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// CountByIDs reports how many of the given ids have a matching account.
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}
