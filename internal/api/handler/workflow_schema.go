package handler

import (
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

type createStepRequest struct {
	Title       string     `json:"title"       validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Order       int        `json:"order"       validate:"gte=0"`
	AssignedTo  string     `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
	Notes       string     `json:"notes"       validate:"omitempty,max=500"`
}

type createWorkflowRequest struct {
	Title       string              `json:"title"       validate:"required,min=3,max=100"`
	Description string              `json:"description" validate:"required,min=10,max=500"`
	Category    string              `json:"category"    validate:"required"`
	Priority    string              `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo  []string            `json:"assignedTo"`
	Steps       []createStepRequest `json:"steps"       validate:"omitempty,dive"`
	DueDate     *time.Time          `json:"dueDate"`
	Tags        []string            `json:"tags"`
	IsPublic    bool                `json:"isPublic"`
}

type updateWorkflowRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=3,max=100"`
	Description *string    `json:"description" validate:"omitempty,min=10,max=500"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=draft active paused completed cancelled"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Category    *string    `json:"category"    validate:"omitempty,max=100"`
	AssignedTo  []string   `json:"assignedTo"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
	IsPublic    *bool      `json:"isPublic"`
}

type updateStepRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed skipped"`
	Notes  string `json:"notes"  validate:"omitempty,max=500"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// workflowResponse is the domain workflow plus its derived progress, which
// is recomputed on every response.
type workflowResponse struct {
	domain.Workflow
	Progress int `json:"progress"`
}

type workflowListData struct {
	Success    bool               `json:"success"`
	Count      int                `json:"count"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	Data       []workflowResponse `json:"data"`
}

func workflowStatusPtr(s *string) *domain.WorkflowStatus {
	if s == nil {
		return nil
	}
	v := domain.WorkflowStatus(*s)
	return &v
}
