package repository

import (
	"context"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create creates a new rating
func (r *RatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// GetByID retrieves a rating by ID
func (r *RatingRepository) GetByID(id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// ListAll retrieves every rating, newest first
func (r *RatingRepository) ListAll(ctx context.Context) ([]models.Rating, error) {
	return r.find(r.db.WithContext(ctx))
}

// GetByTaskID retrieves the ratings recorded on a task, newest first
func (r *RatingRepository) GetByTaskID(taskID uuid.UUID) ([]models.Rating, error) {
	return r.find(r.db.Where("task_id = ?", taskID))
}

// GetByMemberID retrieves the ratings given to a member, newest first
func (r *RatingRepository) GetByMemberID(memberID uuid.UUID) ([]models.Rating, error) {
	return r.find(r.db.Where("member_id = ?", memberID))
}

// GetByTaskAndMember retrieves one member's ratings on one task, newest first
func (r *RatingRepository) GetByTaskAndMember(taskID, memberID uuid.UUID) ([]models.Rating, error) {
	return r.find(r.db.Where("task_id = ? AND member_id = ?", taskID, memberID))
}

// Delete deletes a rating
func (r *RatingRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Rating{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RatingRepository) find(q *gorm.DB) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := q.Order("timestamp DESC, id ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}
