package repository

import (
	"context"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create creates a new member
func (r *MemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListAll retrieves every member, oldest first
func (r *MemberRepository) ListAll(ctx context.Context) ([]models.Member, error) {
	var members []models.Member
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Search retrieves members whose name or role contains query; an empty query matches everyone
func (r *MemberRepository) Search(query string) ([]models.Member, error) {
	var members []models.Member

	q := r.db.Model(&models.Member{})
	if query != "" {
		pattern := likePattern(query)
		q = q.Where(`name ILIKE ? ESCAPE '\' OR role ILIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if err := q.Order("created_at ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetExistingIDs returns the subset of ids that belong to a stored member
func (r *MemberRepository) GetExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	var existing []uuid.UUID
	err := r.db.Model(&models.Member{}).Where("id IN ?", ids).Pluck("id", &existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// Update updates a member
func (r *MemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// Delete deletes a member. Assignments and ratings go with it via cascading keys.
func (r *MemberRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
