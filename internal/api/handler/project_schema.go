package handler

import (
	"time"

	"github.com/worknest/workforce-api/internal/core/domain"
)

type createProjectRequest struct {
	ProjectName string     `json:"projectName" validate:"required,max=100"`
	Description string     `json:"description" validate:"required,max=500"`
	ClientName  string     `json:"clientName"  validate:"omitempty,max=100"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	EndDate     *time.Time `json:"endDate"`
}

type updateProjectRequest struct {
	ProjectName *string    `json:"projectName" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	ClientName  *string    `json:"clientName"  validate:"omitempty,max=100"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=active completed on-hold"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	EndDate     *time.Time `json:"endDate"`
}

func projectStatusPtr(s *string) *domain.ProjectStatus {
	if s == nil {
		return nil
	}
	v := domain.ProjectStatus(*s)
	return &v
}

func priorityPtr(s *string) *domain.Priority {
	if s == nil {
		return nil
	}
	v := domain.Priority(*s)
	return &v
}
