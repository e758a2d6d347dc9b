package domain

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskWorking TaskStatus = "working"
	TaskDone    TaskStatus = "done"
)

// Task is a unit of work attached to a project. Both the task and its
// project must belong to the same employee.
type Task struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	Title         string     `json:"taskTitle" bson:"task_title"`
	Description   string     `json:"taskDescription" bson:"task_description"`
	ProjectID     string     `json:"projectId" bson:"project_id"`
	EmployeeID    string     `json:"employeeId" bson:"employee_id"`
	DaysSpent     float64    `json:"daysSpent" bson:"days_spent"`
	Date          time.Time  `json:"date" bson:"date"`
	Status        TaskStatus `json:"status" bson:"status"`
	Priority      Priority   `json:"priority" bson:"priority"`
	CompletedDate *time.Time `json:"completedDate,omitempty" bson:"completed_date,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updated_at"`
}

// StampCompletion sets CompletedDate when the status moves into done from a
// different state. A task that leaves done keeps its old stamp; re-entering
// done records a fresh one.
func (t *Task) StampCompletion(prev TaskStatus, now time.Time) {
	if t.Status == TaskDone && prev != TaskDone {
		t.CompletedDate = &now
	}
}
