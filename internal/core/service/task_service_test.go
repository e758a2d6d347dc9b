package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/worknest/workforce-api/internal/core/domain"
	"github.com/worknest/workforce-api/internal/core/ports"
)

func newTestTaskService(tasks *stubTaskRepo, projects *stubProjectRepo) *TaskService {
	return NewTaskService(tasks, projects, zerolog.Nop())
}

func seedProject(t *testing.T, repo *stubProjectRepo, employeeID string) *domain.Project {
	t.Helper()
	project, err := repo.Create(context.Background(), &domain.Project{
		Name:       "Alpha",
		EmployeeID: employeeID,
		Status:     domain.ProjectActive,
		Priority:   domain.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}

func TestTaskServiceCreateDefaults(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:     "write report",
		ProjectID: project.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.Status != domain.TaskPending {
		t.Errorf("status = %q, want %q", task.Status, domain.TaskPending)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("priority = %q, want %q", task.Priority, domain.PriorityMedium)
	}
	if task.EmployeeID != owner.ID {
		t.Errorf("employee id = %q, want %q", task.EmployeeID, owner.ID)
	}
	if task.CompletedDate != nil {
		t.Error("pending task must not carry a completion date")
	}
}

func TestTaskServiceCreateAgainstForeignProject(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, stranger.ID)

	// A project owned by someone else reads as missing.
	_, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:     "write report",
		ProjectID: project.ID,
	})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("error = %v, want ErrProjectNotFound", err)
	}
}

func TestTaskServiceCreateNegativeDaysSpent(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	_, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:     "write report",
		ProjectID: project.ID,
		DaysSpent: -1,
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error = %v, want *domain.ValidationError", err)
	}
}

func TestTaskServiceCreateDoneStampsCompletion(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:     "write report",
		ProjectID: project.ID,
		Status:    domain.TaskDone,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if task.CompletedDate == nil {
		t.Error("task created as done must carry a completion date")
	}
}

func TestTaskServiceUpdateCompletionLifecycle(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:     "write report",
		ProjectID: project.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	done := domain.TaskDone
	updated, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Status: &done})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.CompletedDate == nil {
		t.Fatal("moving into done must stamp the completion date")
	}
	firstStamp := *updated.CompletedDate

	// Reopening keeps the stamp.
	working := domain.TaskWorking
	updated, err = svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Status: &working})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.CompletedDate == nil || !updated.CompletedDate.Equal(firstStamp) {
		t.Error("leaving done must keep the previous completion date")
	}

	// Completing again records a fresh stamp.
	time.Sleep(5 * time.Millisecond)
	updated, err = svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Status: &done})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !updated.CompletedDate.After(firstStamp) {
		t.Error("re-entering done must record a fresh completion date")
	}
}

func TestTaskServicePartialUpdate(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:       "write report",
		Description: "quarterly numbers",
		ProjectID:   project.ID,
		Notes:       "draft",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	title := "publish report"
	updated, err := svc.Update(context.Background(), owner, task.ID, ports.UpdateTaskInput{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "publish report" {
		t.Errorf("title = %q, want %q", updated.Title, "publish report")
	}
	if updated.Description != "quarterly numbers" || updated.Notes != "draft" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestTaskServiceListByDate(t *testing.T) {
	projects := newStubProjectRepo()
	tasks := newStubTaskRepo()
	svc := newTestTaskService(tasks, projects)
	project := seedProject(t, projects, owner.ID)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	inDay := day.Add(15 * time.Hour)
	nextDay := day.AddDate(0, 0, 1).Add(time.Hour)

	for _, date := range []time.Time{inDay, nextDay} {
		d := date
		if _, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
			Title:     "t",
			ProjectID: project.ID,
			Date:      &d,
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	got, err := svc.List(context.Background(), owner, ports.ListTasksInput{Date: &day})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if !got[0].Date.Equal(inDay) {
		t.Errorf("wrong task matched the day window: %v", got[0].Date)
	}
}

func TestTaskServiceListByProjectChecksOwnership(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	if _, err := svc.ListByProject(context.Background(), stranger, project.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("error = %v, want ErrProjectNotFound", err)
	}
}

func TestTaskServiceStats(t *testing.T) {
	projects := newStubProjectRepo()
	tasks := newStubTaskRepo()
	svc := newTestTaskService(tasks, projects)
	project := seedProject(t, projects, owner.ID)

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	fixtures := []struct {
		status domain.TaskStatus
		date   time.Time
	}{
		{domain.TaskPending, today},
		{domain.TaskPending, yesterday},
		{domain.TaskWorking, yesterday},
		{domain.TaskDone, yesterday},
	}
	for _, f := range fixtures {
		d := f.date
		if _, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
			Title:     "t",
			ProjectID: project.ID,
			Status:    f.status,
			Date:      &d,
		}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	stats, err := svc.Stats(context.Background(), owner)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 4 || stats.Pending != 2 || stats.Working != 1 || stats.Done != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", stats.DueToday)
	}
}

func TestTaskServiceDeleteScopedToOwner(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestTaskService(newStubTaskRepo(), projects)
	project := seedProject(t, projects, owner.ID)

	task, err := svc.Create(context.Background(), owner, ports.CreateTaskInput{
		Title:     "write report",
		ProjectID: project.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), stranger, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("stranger Delete() error = %v, want ErrTaskNotFound", err)
	}
	if err := svc.Delete(context.Background(), owner, task.ID); err != nil {
		t.Fatalf("owner Delete() error = %v", err)
	}
	if _, err := svc.Get(context.Background(), owner, task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("error = %v, want ErrTaskNotFound after delete", err)
	}
}
