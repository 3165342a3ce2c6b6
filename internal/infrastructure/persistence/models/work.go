package models

import (
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
)

// Employee is a row of the employees table. The id is the staff member's
// identity provider id.
type Employee struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName      string           `gorm:"column:full_name" json:"full_name"`
	Role          crm.EmployeeRole `gorm:"column:role" json:"role"`
	ContactNumber *string          `gorm:"column:contact_number" json:"contact_number"`
	DisplayImage  *string          `gorm:"column:display_image" json:"display_image"`
	CreatedAt     *time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// EmployeeInsert is the shape accepted when creating an employee
type EmployeeInsert struct {
	ID            uuid.UUID        `db:"id" json:"id" validate:"required"`
	FullName      string           `db:"full_name" json:"full_name" validate:"required"`
	Role          crm.EmployeeRole `db:"role" json:"role" validate:"crm_enum"`
	ContactNumber Opt[*string]     `db:"contact_number" json:"contact_number,omitzero"`
	DisplayImage  Opt[*string]     `db:"display_image" json:"display_image,omitzero"`
	CreatedAt     Opt[*time.Time]  `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]  `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i EmployeeInsert) InsertValues() map[string]any { return columnValues(i) }

// EmployeeUpdate is the shape accepted when modifying an employee
type EmployeeUpdate struct {
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	FullName      Opt[string]           `db:"full_name" json:"full_name,omitzero"`
	Role          Opt[crm.EmployeeRole] `db:"role" json:"role,omitzero" validate:"omitempty,crm_enum"`
	ContactNumber Opt[*string]          `db:"contact_number" json:"contact_number,omitzero"`
	DisplayImage  Opt[*string]          `db:"display_image" json:"display_image,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u EmployeeUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Task is a row of the tasks table. A task may hang off any parent record.
type Task struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title       string            `gorm:"column:title" json:"title"`
	Description *string           `gorm:"column:description" json:"description"`
	AssignedTo  *uuid.UUID        `gorm:"column:assigned_to;type:uuid" json:"assigned_to"`
	DueDate     *time.Time        `gorm:"column:due_date;type:date" json:"due_date"`
	ParentID    *uuid.UUID        `gorm:"column:parent_id;type:uuid" json:"parent_id"`
	ParentType  *string           `gorm:"column:parent_type" json:"parent_type"`
	Priority    *crm.TaskPriority `gorm:"column:priority" json:"priority"`
	Status      *crm.TaskStatus   `gorm:"column:status" json:"status"`
	CreatedBy   *uuid.UUID        `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt   *time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue reports whether an active task is past its due date at now
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	status := crm.TaskStatusPending
	if t.Status != nil {
		status = *t.Status
	}
	if !status.IsActive() {
		return false
	}
	y, m, d := t.DueDate.Date()
	return now.After(time.Date(y, m, d+1, 0, 0, 0, 0, t.DueDate.Location()))
}

// TaskInsert is the shape accepted when creating a task
type TaskInsert struct {
	Title       string                 `db:"title" json:"title" validate:"required"`
	ID          Opt[uuid.UUID]         `db:"id" json:"id,omitzero"`
	Description Opt[*string]           `db:"description" json:"description,omitzero"`
	AssignedTo  Opt[*uuid.UUID]        `db:"assigned_to" json:"assigned_to,omitzero"`
	DueDate     Opt[*time.Time]        `db:"due_date" json:"due_date,omitzero"`
	ParentID    Opt[*uuid.UUID]        `db:"parent_id" json:"parent_id,omitzero"`
	ParentType  Opt[*string]           `db:"parent_type" json:"parent_type,omitzero" validate:"omitempty,crm_parent"`
	Priority    Opt[*crm.TaskPriority] `db:"priority" json:"priority,omitzero" validate:"omitempty,crm_enum"`
	Status      Opt[*crm.TaskStatus]   `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	CreatedBy   Opt[*uuid.UUID]        `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time]        `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time]        `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i TaskInsert) InsertValues() map[string]any { return columnValues(i) }

// TaskUpdate is the shape accepted when modifying a task
type TaskUpdate struct {
	ID          Opt[uuid.UUID]         `db:"id" json:"id,omitzero"`
	Title       Opt[string]            `db:"title" json:"title,omitzero"`
	Description Opt[*string]           `db:"description" json:"description,omitzero"`
	AssignedTo  Opt[*uuid.UUID]        `db:"assigned_to" json:"assigned_to,omitzero"`
	DueDate     Opt[*time.Time]        `db:"due_date" json:"due_date,omitzero"`
	ParentID    Opt[*uuid.UUID]        `db:"parent_id" json:"parent_id,omitzero"`
	ParentType  Opt[*string]           `db:"parent_type" json:"parent_type,omitzero" validate:"omitempty,crm_parent"`
	Priority    Opt[*crm.TaskPriority] `db:"priority" json:"priority,omitzero" validate:"omitempty,crm_enum"`
	Status      Opt[*crm.TaskStatus]   `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	CreatedBy   Opt[*uuid.UUID]        `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time]        `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time]        `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u TaskUpdate) UpdateValues() map[string]any { return columnValues(u) }
