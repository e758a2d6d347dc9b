package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worknest/workforce-api/internal/api/metrics"
	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

// ProjectService implements owner-scoped project CRUD.
type ProjectService struct {
	repo  ports.ProjectRepository
	tasks ports.TaskRepository
	log   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, tasks ports.TaskRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, tasks: tasks, log: log}
}

func (s *ProjectService) Create(ctx context.Context, principal domain.Principal, input ports.CreateProjectInput) (*domain.Project, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, domain.NewValidationError("priority must be one of: low, medium, high, urgent")
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
		EmployeeID:  principal.ID,
		Status:      domain.ProjectActive,
		Priority:    priority,
		StartDate:   now,
		EndDate:     input.EndDate,
		ClientName:  input.ClientName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "create").Inc()
	s.log.Info().Str("project_id", created.ID).Str("employee_id", principal.ID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id, principal.ID)
}

func (s *ProjectService) List(ctx context.Context, principal domain.Principal) ([]domain.Project, error) {
	return s.repo.ListByEmployee(ctx, principal.ID)
}

func (s *ProjectService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id, principal.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ClientName != nil {
		project.ClientName = *input.ClientName
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, domain.NewValidationError("priority must be one of: low, medium, high, urgent")
		}
		project.Priority = *input.Priority
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	project.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "update").Inc()
	return updated, nil
}

// Delete removes a project. A project that still has tasks cannot be
// deleted; callers must delete or move the tasks first.
func (s *ProjectService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	if _, err := s.repo.FindByID(ctx, id, principal.ID); err != nil {
		return err
	}

	n, err := s.tasks.CountByProject(ctx, id, principal.ID)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrProjectHasTasks
	}

	if err := s.repo.Delete(ctx, id, principal.ID); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("project", "delete").Inc()
	s.log.Info().Str("project_id", id).Str("employee_id", principal.ID).Msg("project deleted")
	return nil
}
