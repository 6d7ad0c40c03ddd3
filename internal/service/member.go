package service

import (
	"fmt"

	"performance-tracker-backend/internal/database/models"
	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MemberService handles business logic for members
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	snapshots SnapshotProvider
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, snapshots SnapshotProvider, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		snapshots: snapshots,
		validator: validator,
	}
}

// CreateMemberRequest represents the data needed to create a member
type CreateMemberRequest struct {
	Name    string `json:"name" validate:"required,max=200" example:"Jane Doe"`
	Role    string `json:"role" validate:"required,max=100" example:"Backend Engineer"`
	Contact string `json:"contact" validate:"max=255" example:"jane@example.com"`
}

// UpdateMemberRequest represents the data needed to update a member
type UpdateMemberRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role    *string `json:"role" validate:"omitempty,min=1,max=100"`
	Contact *string `json:"contact" validate:"omitempty,max=255"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Contact   string    `json:"contact"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// CreateMember creates a new member
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	member := &models.Member{
		Name:    req.Name,
		Role:    req.Role,
		Contact: req.Contact,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	refreshSnapshot(s.snapshots, "create member")

	return toMemberResponse(member), nil
}

// GetMemberByID retrieves a member by ID
func (s *MemberService) GetMemberByID(id uuid.UUID) (*MemberResponse, error) {
	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrMemberNotFound, "get member")
	}
	return toMemberResponse(member), nil
}

// ListMembers lists members whose name or role matches query; an empty query lists everyone
func (s *MemberService) ListMembers(query string) ([]MemberResponse, error) {
	members, err := s.repo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *toMemberResponse(&members[i])
	}
	return responses, nil
}

// UpdateMember updates an existing member
func (s *MemberService) UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	member, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrMemberNotFound, "get member")
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.Contact != nil {
		member.Contact = *req.Contact
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	refreshSnapshot(s.snapshots, "update member")

	return toMemberResponse(member), nil
}

// DeleteMember deletes a member together with their assignments and ratings
func (s *MemberService) DeleteMember(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return notFoundOr(err, apperrors.ErrMemberNotFound, "delete member")
	}
	refreshSnapshot(s.snapshots, "delete member")
	return nil
}

func toMemberResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Role:      member.Role,
		Contact:   member.Contact,
		CreatedAt: member.CreatedAt.Format(timestampLayout),
		UpdatedAt: member.UpdatedAt.Format(timestampLayout),
	}
}
