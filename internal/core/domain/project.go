package domain

import "time"

// Priority is shared by projects, tasks, and workflows.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriority reports whether p is one of the four known priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

// Project is owned exclusively by the employee that created it. Every read
// and write is filtered by (id, employee_id); a miss under the caller's
// ownership is reported as not found even when the id exists elsewhere.
type Project struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"projectName" bson:"project_name"`
	Description string        `json:"description" bson:"description"`
	EmployeeID  string        `json:"employeeId" bson:"employee_id"`
	Status      ProjectStatus `json:"status" bson:"status"`
	Priority    Priority      `json:"priority" bson:"priority"`
	StartDate   time.Time     `json:"startDate" bson:"start_date"`
	EndDate     *time.Time    `json:"endDate,omitempty" bson:"end_date,omitempty"`
	ClientName  string        `json:"clientName,omitempty" bson:"client_name,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}
