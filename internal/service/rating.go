package service

import (
	"fmt"
	"time"

	"performance-tracker-backend/internal/database/models"
	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/logger"
	"performance-tracker-backend/internal/repository"
	"performance-tracker-backend/internal/stats"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RatingService handles business logic for ratings
type RatingService struct {
	repo       repository.RatingRepositoryInterface
	taskRepo   repository.TaskRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	snapshots  SnapshotProvider
	validator  *validator.Validate
}

// NewRatingService creates a new rating service
func NewRatingService(repo repository.RatingRepositoryInterface, taskRepo repository.TaskRepositoryInterface, memberRepo repository.MemberRepositoryInterface, snapshots SnapshotProvider, validator *validator.Validate) *RatingService {
	return &RatingService{
		repo:       repo,
		taskRepo:   taskRepo,
		memberRepo: memberRepo,
		snapshots:  snapshots,
		validator:  validator,
	}
}

// RatingDimensionsRequest holds the four scores, each from 1 to 5
type RatingDimensionsRequest struct {
	Quality       int `json:"quality" validate:"min=1,max=5" example:"4"`
	Timeliness    int `json:"timeliness" validate:"min=1,max=5" example:"5"`
	Communication int `json:"communication" validate:"min=1,max=5" example:"3"`
	Initiative    int `json:"initiative" validate:"min=1,max=5" example:"4"`
}

// CreateRatingRequest represents the data needed to rate a member on a task
type CreateRatingRequest struct {
	TaskID     uuid.UUID               `json:"task_id" validate:"required"`
	MemberID   uuid.UUID               `json:"member_id" validate:"required"`
	Dimensions RatingDimensionsRequest `json:"dimensions"`
	Comments   string                  `json:"comments"`
	Mode       string                  `json:"mode" example:"daily"` // Optional: defaults to "daily"
	Timestamp  *time.Time              `json:"timestamp"`            // Optional: defaults to now
}

// RatingResponse represents the response data for a rating
type RatingResponse struct {
	ID            uuid.UUID               `json:"id"`
	TaskID        uuid.UUID               `json:"task_id"`
	MemberID      uuid.UUID               `json:"member_id"`
	Dimensions    models.RatingDimensions `json:"dimensions"`
	AverageRating float64                 `json:"average_rating"`
	Comments      string                  `json:"comments"`
	Mode          string                  `json:"mode"`
	Timestamp     string                  `json:"timestamp"`
}

// CreateRating records a rating; both the task and the member must exist
func (s *RatingService) CreateRating(req *CreateRatingRequest) (*RatingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	mode := models.RatingModeDaily
	if req.Mode != "" {
		mode = models.RatingMode(req.Mode)
		if !mode.IsValid() {
			return nil, apperrors.ErrInvalidRatingMode
		}
	}

	if _, err := s.taskRepo.GetByID(req.TaskID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrTaskNotFound, "get task")
	}
	if _, err := s.memberRepo.GetByID(req.MemberID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrMemberNotFound, "get member")
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != nil && !req.Timestamp.IsZero() {
		timestamp = *req.Timestamp
	}

	rating := &models.Rating{
		TaskID:   req.TaskID,
		MemberID: req.MemberID,
		Dimensions: models.RatingDimensions{
			Quality:       req.Dimensions.Quality,
			Timeliness:    req.Dimensions.Timeliness,
			Communication: req.Dimensions.Communication,
			Initiative:    req.Dimensions.Initiative,
		},
		Comments:  req.Comments,
		Mode:      mode,
		Timestamp: timestamp,
	}

	if err := s.repo.Create(rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	refreshSnapshot(s.snapshots, "create rating")

	return toRatingResponse(rating), nil
}

// GetRatingsByTask lists the ratings recorded on a task
func (s *RatingService) GetRatingsByTask(taskID uuid.UUID) ([]RatingResponse, error) {
	ratings, err := s.repo.GetByTaskID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task ratings: %w", err)
	}
	return toRatingResponses(ratings), nil
}

// GetRatingsByMember lists the ratings given to a member
func (s *RatingService) GetRatingsByMember(memberID uuid.UUID) ([]RatingResponse, error) {
	ratings, err := s.repo.GetByMemberID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member ratings: %w", err)
	}
	return toRatingResponses(ratings), nil
}

// GetRatingsByTaskAndMember lists one member's ratings on one task
func (s *RatingService) GetRatingsByTaskAndMember(taskID, memberID uuid.UUID) ([]RatingResponse, error) {
	ratings, err := s.repo.GetByTaskAndMember(taskID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	return toRatingResponses(ratings), nil
}

// DeleteRating deletes a rating and logs which task and member it belonged to
func (s *RatingService) DeleteRating(id uuid.UUID) error {
	rating, err := s.repo.GetByID(id)
	if err != nil {
		return notFoundOr(err, apperrors.ErrRatingNotFound, "get rating")
	}
	if err := s.repo.Delete(id); err != nil {
		return notFoundOr(err, apperrors.ErrRatingNotFound, "delete rating")
	}
	logger.WithComponent("service").WithFields(map[string]any{
		"rating_id": id,
		"task_id":   rating.TaskID,
		"member_id": rating.MemberID,
	}).Info("Rating deleted")
	refreshSnapshot(s.snapshots, "delete rating")
	return nil
}

func toRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:            rating.ID,
		TaskID:        rating.TaskID,
		MemberID:      rating.MemberID,
		Dimensions:    rating.Dimensions,
		AverageRating: stats.AverageRating(*rating),
		Comments:      rating.Comments,
		Mode:          string(rating.Mode),
		Timestamp:     rating.Timestamp.Format(timestampLayout),
	}
}

func toRatingResponses(ratings []models.Rating) []RatingResponse {
	responses := make([]RatingResponse, len(ratings))
	for i := range ratings {
		responses[i] = *toRatingResponse(&ratings[i])
	}
	return responses
}
