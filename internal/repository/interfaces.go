package repository

import (
	"context"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	Create(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	ListAll(ctx context.Context) ([]models.Member, error)
	Search(query string) ([]models.Member, error)
	GetExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error)
	Update(member *models.Member) error
	Delete(id uuid.UUID) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	ListAll(ctx context.Context) ([]models.Task, error)
	Search(filter TaskFilter) ([]models.Task, error)
	GetByMemberID(memberID uuid.UUID) ([]models.Task, error)
	UpdateWithAssignments(task *models.Task, memberIDs *[]uuid.UUID) error
	UpdateStatus(id uuid.UUID, status models.TaskStatus) error
	Delete(id uuid.UUID) error
	AddSubtask(subtask *models.Subtask) error
	GetSubtask(taskID, subtaskID uuid.UUID) (*models.Subtask, error)
	SetSubtaskCompleted(subtaskID uuid.UUID, completed bool) error
	AddAttachment(attachment *models.TaskAttachment) error
}

// RatingRepositoryInterface defines the interface for rating repository operations
type RatingRepositoryInterface interface {
	Create(rating *models.Rating) error
	GetByID(id uuid.UUID) (*models.Rating, error)
	ListAll(ctx context.Context) ([]models.Rating, error)
	GetByTaskID(taskID uuid.UUID) ([]models.Rating, error)
	GetByMemberID(memberID uuid.UUID) ([]models.Rating, error)
	GetByTaskAndMember(taskID, memberID uuid.UUID) ([]models.Rating, error)
	Delete(id uuid.UUID) error
}
