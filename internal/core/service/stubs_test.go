package service

import (
	"context"
	"fmt"
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

// --- employee repository stub ---

type stubEmployeeRepo struct {
	byID    map[string]*domain.Employee
	byEmail map[string]*domain.Employee
	nextID  int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{
		byID:    make(map[string]*domain.Employee),
		byEmail: make(map[string]*domain.Employee),
	}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	if _, exists := r.byEmail[e.Email]; exists {
		return nil, domain.ErrEmployeeExists
	}
	copy := cloneEmployee(e)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("emp-%d", r.nextID)
	}
	r.byID[copy.ID] = cloneEmployee(copy)
	r.byEmail[copy.Email] = r.byID[copy.ID]
	return cloneEmployee(copy), nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	if e, ok := r.byEmail[email]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.byID[id]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) CountByIDs(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			n++
		}
	}
	return n, nil
}

// --- login throttle stub ---

type stubThrottle struct {
	failures map[string]int
	max      int
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), max: 5}
}

func (t *stubThrottle) Blocked(_ context.Context, email string) (bool, error) {
	return t.failures[email] >= t.max, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	delete(t.failures, email)
	return nil
}

// --- project repository stub ---

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	copy := cloneProject(p)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("proj-%d", r.nextID)
	}
	r.projects[copy.ID] = cloneProject(copy)
	return cloneProject(copy), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id, employeeID string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.EmployeeID != employeeID {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) ListByEmployee(_ context.Context, employeeID string) ([]domain.Project, error) {
	out := []domain.Project{}
	for _, p := range r.projects {
		if p.EmployeeID == employeeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	existing, ok := r.projects[p.ID]
	if !ok || existing.EmployeeID != p.EmployeeID {
		return nil, domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return cloneProject(p), nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id, employeeID string) error {
	p, ok := r.projects[id]
	if !ok || p.EmployeeID != employeeID {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

// --- task repository stub ---

type stubTaskRepo struct {
	tasks  map[string]*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*domain.Task)}
}

func cloneTask(t *domain.Task) *domain.Task {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

func (r *stubTaskRepo) Create(_ context.Context, t *domain.Task) (*domain.Task, error) {
	copy := cloneTask(t)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("task-%d", r.nextID)
	}
	r.tasks[copy.ID] = cloneTask(copy)
	return cloneTask(copy), nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id, employeeID string) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.EmployeeID != employeeID {
		return nil, domain.ErrTaskNotFound
	}
	return cloneTask(t), nil
}

func (r *stubTaskRepo) List(_ context.Context, filter ports.TaskFilter) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, t := range r.tasks {
		if t.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.ProjectID != "" && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.DateFrom != nil && filter.DateTo != nil {
			if t.Date.Before(*filter.DateFrom) || !t.Date.Before(*filter.DateTo) {
				continue
			}
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTaskRepo) Update(_ context.Context, t *domain.Task) (*domain.Task, error) {
	existing, ok := r.tasks[t.ID]
	if !ok || existing.EmployeeID != t.EmployeeID {
		return nil, domain.ErrTaskNotFound
	}
	r.tasks[t.ID] = cloneTask(t)
	return cloneTask(t), nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id, employeeID string) error {
	t, ok := r.tasks[id]
	if !ok || t.EmployeeID != employeeID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) CountByProject(_ context.Context, projectID, employeeID string) (int64, error) {
	var n int64
	for _, t := range r.tasks {
		if t.ProjectID == projectID && t.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

func (r *stubTaskRepo) Stats(_ context.Context, employeeID string, dayStart, dayEnd time.Time) (*ports.TaskStats, error) {
	var stats ports.TaskStats
	for _, t := range r.tasks {
		if t.EmployeeID != employeeID {
			continue
		}
		stats.Total++
		switch t.Status {
		case domain.TaskPending:
			stats.Pending++
		case domain.TaskWorking:
			stats.Working++
		case domain.TaskDone:
			stats.Done++
		}
		if !t.Date.Before(dayStart) && t.Date.Before(dayEnd) {
			stats.DueToday++
		}
	}
	return &stats, nil
}

// --- workflow repository stub ---

type stubWorkflowRepo struct {
	workflows map[string]*domain.Workflow
	nextID    int
}

func newStubWorkflowRepo() *stubWorkflowRepo {
	return &stubWorkflowRepo{workflows: make(map[string]*domain.Workflow)}
}

// cloneSlice deep-copies a slice while preserving the nil vs. empty
// distinction, which append([]T(nil), s...) would collapse to nil.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneWorkflow(w *domain.Workflow) *domain.Workflow {
	if w == nil {
		return nil
	}
	clone := *w
	clone.AssignedTo = cloneSlice(w.AssignedTo)
	clone.Steps = cloneSlice(w.Steps)
	clone.Tags = cloneSlice(w.Tags)
	clone.Comments = cloneSlice(w.Comments)
	return &clone
}

func (r *stubWorkflowRepo) Create(_ context.Context, w *domain.Workflow) (*domain.Workflow, error) {
	copy := cloneWorkflow(w)
	if copy.ID == "" {
		r.nextID++
		copy.ID = fmt.Sprintf("wf-%d", r.nextID)
	}
	for i := range copy.Steps {
		if copy.Steps[i].ID == "" {
			copy.Steps[i].ID = fmt.Sprintf("%s-step-%d", copy.ID, i+1)
		}
	}
	r.workflows[copy.ID] = cloneWorkflow(copy)
	return cloneWorkflow(copy), nil
}

func (r *stubWorkflowRepo) FindByID(_ context.Context, id string) (*domain.Workflow, error) {
	if w, ok := r.workflows[id]; ok {
		return cloneWorkflow(w), nil
	}
	return nil, domain.ErrWorkflowNotFound
}

func (r *stubWorkflowRepo) List(_ context.Context, filter ports.WorkflowListFilter) ([]domain.Workflow, int64, error) {
	out := []domain.Workflow{}
	for _, w := range r.workflows {
		if !filter.Scope.All && !visibleTo(w, filter.Scope.ViewerID) {
			continue
		}
		if filter.Status != "" && w.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && w.Priority != filter.Priority {
			continue
		}
		if filter.Category != "" && w.Category != filter.Category {
			continue
		}
		out = append(out, *cloneWorkflow(w))
	}
	return out, int64(len(out)), nil
}

func visibleTo(w *domain.Workflow, viewerID string) bool {
	if w.CreatedBy == viewerID || w.IsPublic {
		return true
	}
	for _, id := range w.AssignedTo {
		if id == viewerID {
			return true
		}
	}
	return false
}

func (r *stubWorkflowRepo) Update(_ context.Context, w *domain.Workflow) (*domain.Workflow, error) {
	if _, ok := r.workflows[w.ID]; !ok {
		return nil, domain.ErrWorkflowNotFound
	}
	copy := cloneWorkflow(w)
	for i := range copy.Comments {
		if copy.Comments[i].ID == "" {
			copy.Comments[i].ID = fmt.Sprintf("%s-comment-%d", copy.ID, i+1)
		}
	}
	r.workflows[w.ID] = copy
	return cloneWorkflow(copy), nil
}

func (r *stubWorkflowRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.workflows[id]; !ok {
		return domain.ErrWorkflowNotFound
	}
	delete(r.workflows, id)
	return nil
}

func (r *stubWorkflowRepo) Stats(_ context.Context, scope domain.WorkflowScope, now time.Time) (*ports.WorkflowStats, error) {
	stats := &ports.WorkflowStats{
		ByStatus:   map[string]int64{},
		ByPriority: map[string]int64{},
	}
	for _, w := range r.workflows {
		if !scope.All && !visibleTo(w, scope.ViewerID) {
			continue
		}
		stats.Total++
		stats.ByStatus[string(w.Status)]++
		stats.ByPriority[string(w.Priority)]++
		switch w.Status {
		case domain.WorkflowActive:
			stats.Active++
		case domain.WorkflowCompleted:
			stats.Completed++
		}
		if w.DueDate != nil && w.DueDate.Before(now) &&
			w.Status != domain.WorkflowCompleted && w.Status != domain.WorkflowCancelled {
			stats.Overdue++
		}
	}
	return stats, nil
}
