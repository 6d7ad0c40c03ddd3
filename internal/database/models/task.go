package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Task represents a unit of work assigned to one or more members
type Task struct {
	BaseModel
	Title       string     `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date" gorm:"not null"`
	EndDate     time.Time  `json:"end_date" gorm:"not null"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'not-started';index"`

	// Relationships
	Assignments []TaskAssignment `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Subtasks    []Subtask        `json:"subtasks" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Attachments []TaskAttachment `json:"attachments" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// AssignedMemberIDs returns the assigned member ids in assignment order
func (t *Task) AssignedMemberIDs() []uuid.UUID {
	assignments := make([]TaskAssignment, len(t.Assignments))
	copy(assignments, t.Assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].Position < assignments[j].Position
	})

	ids := make([]uuid.UUID, len(assignments))
	for i, a := range assignments {
		ids[i] = a.MemberID
	}
	return ids
}

// IsAssigned reports whether the member is assigned to the task
func (t *Task) IsAssigned(memberID uuid.UUID) bool {
	for _, a := range t.Assignments {
		if a.MemberID == memberID {
			return true
		}
	}
	return false
}

// CompletedSubtasks counts the subtasks marked completed
func (t *Task) CompletedSubtasks() int {
	n := 0
	for _, s := range t.Subtasks {
		if s.Completed {
			n++
		}
	}
	return n
}

// TaskAssignment links a member to a task. Position keeps the assignment order.
type TaskAssignment struct {
	TaskID    uuid.UUID `json:"task_id" gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID `json:"member_id" gorm:"type:uuid;primaryKey;index"`
	Position  int       `json:"position" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	Member *Member `json:"-" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TaskAssignment
func (TaskAssignment) TableName() string {
	return "task_assignments"
}

// Subtask is a checklist item owned by exactly one task
type Subtask struct {
	BaseModel
	TaskID    uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	Title     string    `json:"title" gorm:"not null;size:200"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
}

// TableName returns the table name for Subtask
func (Subtask) TableName() string {
	return "subtasks"
}

// TaskAttachment is a file attached to a task, stored inline as base64
type TaskAttachment struct {
	BaseModel
	TaskID     uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"not null;size:255"`
	Type       string    `json:"type" gorm:"not null;size:100"`
	Base64Data string    `json:"base64_data" gorm:"type:text;not null"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"not null"`
}

// TableName returns the table name for TaskAttachment
func (TaskAttachment) TableName() string {
	return "task_attachments"
}
