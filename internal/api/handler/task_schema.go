package handler

import (
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

type createTaskRequest struct {
	TaskTitle       string     `json:"taskTitle"       validate:"required,max=200"`
	TaskDescription string     `json:"taskDescription" validate:"required,max=1000"`
	ProjectID       string     `json:"projectId"       validate:"required"`
	DaysSpent       float64    `json:"daysSpent"       validate:"gte=0"`
	Date            *time.Time `json:"date"`
	Status          string     `json:"status"          validate:"omitempty,oneof=pending working done"`
	Priority        string     `json:"priority"        validate:"omitempty,oneof=low medium high urgent"`
	Notes           string     `json:"notes"           validate:"omitempty,max=500"`
}

type updateTaskRequest struct {
	TaskTitle       *string    `json:"taskTitle"       validate:"omitempty,max=200"`
	TaskDescription *string    `json:"taskDescription" validate:"omitempty,max=1000"`
	DaysSpent       *float64   `json:"daysSpent"       validate:"omitempty,gte=0"`
	Date            *time.Time `json:"date"`
	Status          *string    `json:"status"          validate:"omitempty,oneof=pending working done"`
	Priority        *string    `json:"priority"        validate:"omitempty,oneof=low medium high urgent"`
	Notes           *string    `json:"notes"           validate:"omitempty,max=500"`
}

func taskStatusPtr(s *string) *domain.TaskStatus {
	if s == nil {
		return nil
	}
	v := domain.TaskStatus(*s)
	return &v
}
