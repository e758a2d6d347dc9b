package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/worknest/workforce-api/internal/api/metrics"
	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// WorkflowService implements workflow use cases behind the visibility
// policy. Every per-record operation fetches the workflow first and derives
// the caller's capability set from it.
type WorkflowService struct {
	repo      ports.WorkflowRepository
	employees ports.EmployeeRepository
	log       zerolog.Logger
}

func NewWorkflowService(repo ports.WorkflowRepository, employees ports.EmployeeRepository, log zerolog.Logger) *WorkflowService {
	return &WorkflowService{repo: repo, employees: employees, log: log}
}

func (s *WorkflowService) Create(ctx context.Context, principal domain.Principal, input ports.CreateWorkflowInput) (*domain.Workflow, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, domain.NewValidationError("priority must be one of: low, medium, high, urgent")
	}

	if err := s.validateAssignees(ctx, input.AssignedTo); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	steps := make([]domain.Step, 0, len(input.Steps))
	for _, in := range input.Steps {
		steps = append(steps, domain.Step{
			Title:       in.Title,
			Description: in.Description,
			Order:       in.Order,
			Status:      domain.StepPending,
			AssigneeID:  in.AssigneeID,
			DueDate:     in.DueDate,
			Notes:       in.Notes,
		})
	}

	workflow := &domain.Workflow{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.WorkflowDraft,
		Priority:    priority,
		Category:    input.Category,
		CreatedBy:   principal.ID,
		AssignedTo:  emptyIfNil(input.AssignedTo),
		Steps:       steps,
		DueDate:     input.DueDate,
		Tags:        emptyIfNil(input.Tags),
		Comments:    []domain.Comment{},
		IsPublic:    input.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, workflow)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("workflow", "create").Inc()
	s.log.Info().Str("workflow_id", created.ID).Str("created_by", principal.ID).Msg("workflow created")
	return created, nil
}

func (s *WorkflowService) Get(ctx context.Context, principal domain.Principal, id string) (*domain.Workflow, error) {
	workflow, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.WorkflowCapabilities(principal, workflow).Has(domain.CapRead) {
		metrics.ForbiddenTotal.WithLabelValues("workflow").Inc()
		return nil, domain.ErrForbidden
	}
	return workflow, nil
}

func (s *WorkflowService) List(ctx context.Context, principal domain.Principal, input ports.ListWorkflowsInput) (*ports.ListWorkflowsResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := s.repo.List(ctx, ports.WorkflowListFilter{
		Scope:    domain.ScopeFor(principal),
		Status:   input.Status,
		Priority: input.Priority,
		Category: input.Category,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListWorkflowsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *WorkflowService) Update(ctx context.Context, principal domain.Principal, id string, input ports.UpdateWorkflowInput) (*domain.Workflow, error) {
	workflow, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.WorkflowCapabilities(principal, workflow).Has(domain.CapUpdate) {
		metrics.ForbiddenTotal.WithLabelValues("workflow").Inc()
		return nil, domain.ErrForbidden
	}

	if input.AssignedTo != nil {
		if err := s.validateAssignees(ctx, input.AssignedTo); err != nil {
			return nil, err
		}
		workflow.AssignedTo = input.AssignedTo
	}
	if input.Title != nil {
		workflow.Title = *input.Title
	}
	if input.Description != nil {
		workflow.Description = *input.Description
	}
	if input.Priority != nil {
		if !domain.ValidPriority(*input.Priority) {
			return nil, domain.NewValidationError("priority must be one of: low, medium, high, urgent")
		}
		workflow.Priority = *input.Priority
	}
	if input.Category != nil {
		workflow.Category = *input.Category
	}
	if input.DueDate != nil {
		workflow.DueDate = input.DueDate
	}
	if input.Tags != nil {
		workflow.Tags = input.Tags
	}
	if input.IsPublic != nil {
		workflow.IsPublic = *input.IsPublic
	}

	now := time.Now().UTC()
	if input.Status != nil {
		if *input.Status == domain.WorkflowCompleted && workflow.Status != domain.WorkflowCompleted {
			workflow.CompletedAt = &now
		}
		workflow.Status = *input.Status
	}
	workflow.UpdatedAt = now

	updated, err := s.repo.Update(ctx, workflow)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("workflow", "update").Inc()
	return updated, nil
}

func (s *WorkflowService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	workflow, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.WorkflowCapabilities(principal, workflow).Has(domain.CapDelete) {
		metrics.ForbiddenTotal.WithLabelValues("workflow").Inc()
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("workflow", "delete").Inc()
	s.log.Info().Str("workflow_id", id).Str("deleted_by", principal.ID).Msg("workflow deleted")
	return nil
}

func (s *WorkflowService) UpdateStep(ctx context.Context, principal domain.Principal, workflowID, stepID string, input ports.UpdateStepInput) (*domain.Workflow, error) {
	if !domain.ValidStepStatus(input.Status) {
		return nil, domain.NewValidationError("status must be one of: pending, in_progress, completed, skipped")
	}

	workflow, err := s.repo.FindByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if !domain.WorkflowCapabilities(principal, workflow).Has(domain.CapUpdateStep) {
		metrics.ForbiddenTotal.WithLabelValues("workflow").Inc()
		return nil, domain.ErrForbidden
	}

	step := workflow.StepByID(stepID)
	if step == nil {
		return nil, domain.ErrStepNotFound
	}

	step.Status = input.Status
	if input.Notes != "" {
		step.Notes = input.Notes
	}
	now := time.Now().UTC()
	if input.Status == domain.StepCompleted {
		step.CompletedAt = &now
		metrics.StepCompletionsTotal.Inc()
	}
	workflow.UpdatedAt = now

	return s.repo.Update(ctx, workflow)
}

func (s *WorkflowService) AddComment(ctx context.Context, principal domain.Principal, workflowID, text string) (*domain.Workflow, error) {
	if text == "" {
		return nil, domain.NewValidationError("comment text is required")
	}

	workflow, err := s.repo.FindByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if !domain.WorkflowCapabilities(principal, workflow).Has(domain.CapComment) {
		metrics.ForbiddenTotal.WithLabelValues("workflow").Inc()
		return nil, domain.ErrForbidden
	}

	now := time.Now().UTC()
	workflow.Comments = append(workflow.Comments, domain.Comment{
		AuthorID:  principal.ID,
		Text:      text,
		CreatedAt: now,
	})
	workflow.UpdatedAt = now

	return s.repo.Update(ctx, workflow)
}

func (s *WorkflowService) Stats(ctx context.Context, principal domain.Principal) (*ports.WorkflowStats, error) {
	return s.repo.Stats(ctx, domain.ScopeFor(principal), time.Now().UTC())
}

// validateAssignees rejects the whole set when any id has no matching
// account. No partial application.
func (s *WorkflowService) validateAssignees(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := s.employees.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return domain.NewValidationError("one or more assigned employees not found")
	}
	return nil
}

func emptyIfNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
