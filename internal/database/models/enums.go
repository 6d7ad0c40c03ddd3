package models

// TaskStatus is the lifecycle state of a task. A task has exactly one status.
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not-started"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusCompleted  TaskStatus = "completed"
)

// RatingMode distinguishes day-to-day ratings from the final rating of a task
type RatingMode string

const (
	RatingModeDaily RatingMode = "daily"
	RatingModeFinal RatingMode = "final"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusReview, TaskStatusCompleted:
		return true
	}
	return false
}

// Label renders the status the way reports print it, e.g. "IN PROGRESS"
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusNotStarted:
		return "NOT STARTED"
	case TaskStatusInProgress:
		return "IN PROGRESS"
	case TaskStatusReview:
		return "REVIEW"
	case TaskStatusCompleted:
		return "COMPLETED"
	}
	return string(s)
}

// IsValid checks if the RatingMode is valid
func (m RatingMode) IsValid() bool {
	switch m {
	case RatingModeDaily, RatingModeFinal:
		return true
	}
	return false
}
