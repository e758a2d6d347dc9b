package domain

import (
	"math"
	"time"
)

// WorkflowStatus is the lifecycle state of a workflow.
type WorkflowStatus string

const (
	WorkflowDraft     WorkflowStatus = "draft"
	WorkflowActive    WorkflowStatus = "active"
	WorkflowPaused    WorkflowStatus = "paused"
	WorkflowCompleted WorkflowStatus = "completed"
	WorkflowCancelled WorkflowStatus = "cancelled"
)

// StepStatus is the state of a single workflow step.
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
	StepSkipped    StepStatus = "skipped"
)

// ValidStepStatus reports whether s is one of the four step states.
func ValidStepStatus(s StepStatus) bool {
	switch s {
	case StepPending, StepInProgress, StepCompleted, StepSkipped:
		return true
	}
	return false
}

// Step is owned by its parent workflow and is only ever addressed through
// the (workflow id, step id) pair.
type Step struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Order       int        `json:"order" bson:"order"`
	Status      StepStatus `json:"status" bson:"status"`
	AssigneeID  string     `json:"assignedTo,omitempty" bson:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty" bson:"completed_at,omitempty"`
	Notes       string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Comment is an append-only note on a workflow. There is no edit or delete.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AuthorID  string    `json:"user" bson:"author_id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// Workflow is an approval-style process with ordered steps, shared with a
// set of assignees and optionally made public.
type Workflow struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Status      WorkflowStatus `json:"status" bson:"status"`
	Priority    Priority       `json:"priority" bson:"priority"`
	Category    string         `json:"category" bson:"category"`
	CreatedBy   string         `json:"createdBy" bson:"created_by"`
	AssignedTo  []string       `json:"assignedTo" bson:"assigned_to"`
	Steps       []Step         `json:"steps" bson:"steps"`
	DueDate     *time.Time     `json:"dueDate,omitempty" bson:"due_date,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty" bson:"completed_at,omitempty"`
	Tags        []string       `json:"tags" bson:"tags"`
	Comments    []Comment      `json:"comments" bson:"comments"`
	IsPublic    bool           `json:"isPublic" bson:"is_public"`
	CreatedAt   time.Time      `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" bson:"updated_at"`
}

// Progress is the percentage of completed steps, rounded to the nearest
// whole percent. A workflow without steps has zero progress.
func (w *Workflow) Progress() int {
	if len(w.Steps) == 0 {
		return 0
	}
	completed := 0
	for _, s := range w.Steps {
		if s.Status == StepCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(w.Steps)) * 100))
}

// StepByID returns a pointer into the workflow's step slice, or nil when no
// step carries the given id.
func (w *Workflow) StepByID(stepID string) *Step {
	for i := range w.Steps {
		if w.Steps[i].ID == stepID {
			return &w.Steps[i]
		}
	}
	return nil
}
