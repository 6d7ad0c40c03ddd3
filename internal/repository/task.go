package repository

import (
	"context"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskFilter narrows task searches. Archived selects completed tasks only;
// otherwise completed tasks are excluded and Status may narrow further.
type TaskFilter struct {
	Query    string
	Status   models.TaskStatus
	Archived bool
}

// TaskRepository handles database operations for tasks and the rows they own
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// withRelations preloads assignments in assignment order, subtasks and attachments
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("uploaded_at ASC")
		})
}

// Create creates a task together with its assignments and subtasks
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID with all relations
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := withRelations(r.db).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListAll retrieves every task with relations, newest first
func (r *TaskRepository) ListAll(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := withRelations(r.db.WithContext(ctx)).Order("created_at DESC, id ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Search retrieves tasks matching the filter, newest first
func (r *TaskRepository) Search(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	q := withRelations(r.db.Model(&models.Task{}))
	if filter.Archived {
		q = q.Where("status = ?", models.TaskStatusCompleted)
	} else {
		q = q.Where("status <> ?", models.TaskStatusCompleted)
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		q = q.Where(`title ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if err := q.Order("created_at DESC, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetByMemberID retrieves the tasks a member is assigned to, newest first
func (r *TaskRepository) GetByMemberID(memberID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := withRelations(r.db).
		Where("id IN (?)", r.db.Model(&models.TaskAssignment{}).Select("task_id").Where("member_id = ?", memberID)).
		Order("created_at DESC, id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateWithAssignments saves the task's own columns and, when memberIDs is non-nil,
// swaps its assignment list for *memberIDs. Both writes share one transaction.
func (r *TaskRepository) UpdateWithAssignments(task *models.Task, memberIDs *[]uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}
		if memberIDs == nil {
			return nil
		}
		return replaceAssignments(tx, task.ID, *memberIDs)
	})
}

// replaceAssignments rewrites the task's assignments. Repeated ids keep their first position.
func replaceAssignments(tx *gorm.DB, taskID uuid.UUID, memberIDs []uuid.UUID) error {
	if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskAssignment{}).Error; err != nil {
		return err
	}

	assignments := make([]models.TaskAssignment, 0, len(memberIDs))
	seen := make(map[uuid.UUID]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		assignments = append(assignments, models.TaskAssignment{
			TaskID:   taskID,
			MemberID: id,
			Position: len(assignments),
		})
	}
	if len(assignments) == 0 {
		return nil
	}
	return tx.Create(&assignments).Error
}

// UpdateStatus sets the status of a task
func (r *TaskRepository) UpdateStatus(id uuid.UUID, status models.TaskStatus) error {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a task. Assignments, subtasks, attachments and ratings cascade.
func (r *TaskRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddSubtask creates a subtask on an existing task
func (r *TaskRepository) AddSubtask(subtask *models.Subtask) error {
	return r.db.Create(subtask).Error
}

// GetSubtask retrieves a subtask that belongs to the given task
func (r *TaskRepository) GetSubtask(taskID, subtaskID uuid.UUID) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.First(&subtask, "id = ? AND task_id = ?", subtaskID, taskID).Error
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

// SetSubtaskCompleted sets the completion flag of a subtask
func (r *TaskRepository) SetSubtaskCompleted(subtaskID uuid.UUID, completed bool) error {
	result := r.db.Model(&models.Subtask{}).Where("id = ?", subtaskID).Update("completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddAttachment stores an attachment on an existing task
func (r *TaskRepository) AddAttachment(attachment *models.TaskAttachment) error {
	return r.db.Create(attachment).Error
}
