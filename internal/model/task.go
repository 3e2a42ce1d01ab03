package model

import "time"

// TaskStatusCompleted is the only status value with aggregate meaning:
// everything else counts as pending on the dashboard.
const TaskStatusCompleted = "Completed"

// Task is a to-do record in the tasks collection.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	DueDate     string    `json:"dueDate"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskPatch carries the client-editable fields of a Task.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

func (t *Task) RecordID() string { return t.ID }

func (t *Task) Stamp(id, createdBy string, now time.Time) {
	t.ID = id
	t.CreatedBy = createdBy
	t.CreatedAt = now
	t.UpdatedAt = now
}

func (t *Task) Touch(now time.Time) { t.UpdatedAt = now }

func (t *Task) Apply(p TaskPatch) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
}
