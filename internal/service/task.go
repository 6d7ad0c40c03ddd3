package service

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"performance-tracker-backend/internal/database/models"
	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TaskService handles business logic for tasks, their subtasks and attachments
type TaskService struct {
	repo       repository.TaskRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	snapshots  SnapshotProvider
	validator  *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(repo repository.TaskRepositoryInterface, memberRepo repository.MemberRepositoryInterface, snapshots SnapshotProvider, validator *validator.Validate) *TaskService {
	return &TaskService{
		repo:       repo,
		memberRepo: memberRepo,
		snapshots:  snapshots,
		validator:  validator,
	}
}

// CreateTaskRequest represents the data needed to create a task
type CreateTaskRequest struct {
	Title           string      `json:"title" validate:"required,max=200" example:"Implement login page"`
	Description     string      `json:"description"`
	StartDate       time.Time   `json:"start_date"`
	EndDate         time.Time   `json:"end_date"`
	Status          string      `json:"status" example:"not-started"` // Optional: defaults to "not-started"
	AssignedMembers []uuid.UUID `json:"assigned_members"`
	Subtasks        []string    `json:"subtasks" validate:"dive,required,max=200"`
}

// UpdateTaskRequest represents a partial task update. AssignedMembers, when present,
// replaces the whole assignment list.
type UpdateTaskRequest struct {
	Title           *string      `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string      `json:"description"`
	StartDate       *time.Time   `json:"start_date"`
	EndDate         *time.Time   `json:"end_date"`
	Status          *string      `json:"status"`
	AssignedMembers *[]uuid.UUID `json:"assigned_members"`
}

// UpdateTaskStatusRequest represents a status change
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required" example:"in-progress"`
}

// AddSubtaskRequest represents a new checklist item
type AddSubtaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

// AddAttachmentRequest represents a file upload encoded as base64, optionally as a data URL
type AddAttachmentRequest struct {
	Name       string `json:"name" validate:"required,max=255" example:"design.pdf"`
	Type       string `json:"type" validate:"required,max=100" example:"application/pdf"`
	Base64Data string `json:"base64_data" validate:"required"`
}

// SubtaskResponse represents a subtask
type SubtaskResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

// AttachmentResponse represents an attachment
type AttachmentResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Base64Data string    `json:"base64_data"`
	UploadedAt string    `json:"uploaded_at"`
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID              uuid.UUID            `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	StartDate       string               `json:"start_date"`
	EndDate         string               `json:"end_date"`
	Status          string               `json:"status"`
	AssignedMembers []uuid.UUID          `json:"assigned_members"`
	Subtasks        []SubtaskResponse    `json:"subtasks"`
	Attachments     []AttachmentResponse `json:"attachments"`
	CreatedAt       string               `json:"created_at"`
	UpdatedAt       string               `json:"updated_at"`
}

// CreateTask creates a task with its assignments and initial subtasks
func (s *TaskService) CreateTask(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if req.StartDate.IsZero() {
		return nil, apperrors.NewValidationError("start_date", "start date is required")
	}
	if req.EndDate.IsZero() {
		return nil, apperrors.NewValidationError("end_date", "end date is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	status := models.TaskStatusNotStarted
	if req.Status != "" {
		status = models.TaskStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}

	memberIDs := uniqueIDs(req.AssignedMembers)
	if err := s.ensureMembersExist(memberIDs); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      status,
	}
	for i, id := range memberIDs {
		task.Assignments = append(task.Assignments, models.TaskAssignment{MemberID: id, Position: i})
	}
	for _, title := range req.Subtasks {
		task.Subtasks = append(task.Subtasks, models.Subtask{Title: title})
	}

	if err := s.repo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	refreshSnapshot(s.snapshots, "create task")

	return toTaskResponse(task), nil
}

// GetTaskByID retrieves a task by ID
func (s *TaskService) GetTaskByID(id uuid.UUID) (*TaskResponse, error) {
	task, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrTaskNotFound, "get task")
	}
	return toTaskResponse(task), nil
}

// ListTasks lists tasks that are not completed, optionally filtered by text and status
func (s *TaskService) ListTasks(query, status string) ([]TaskResponse, error) {
	filter := repository.TaskFilter{Query: query}
	if status != "" && status != "all" {
		filter.Status = models.TaskStatus(status)
		if !filter.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		if filter.Status == models.TaskStatusCompleted {
			return s.ListArchivedTasks(query)
		}
	}
	return s.search(filter)
}

// ListArchivedTasks lists completed tasks, optionally filtered by title or description
func (s *TaskService) ListArchivedTasks(query string) ([]TaskResponse, error) {
	return s.search(repository.TaskFilter{Query: query, Archived: true})
}

// GetTasksByMember lists the tasks a member is assigned to
func (s *TaskService) GetTasksByMember(memberID uuid.UUID) ([]TaskResponse, error) {
	if _, err := s.memberRepo.GetByID(memberID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrMemberNotFound, "get member")
	}

	tasks, err := s.repo.GetByMemberID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member tasks: %w", err)
	}
	return toTaskResponses(tasks), nil
}

// UpdateTask applies a partial update
func (s *TaskService) UpdateTask(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	task, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrTaskNotFound, "get task")
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
		if !task.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
	}
	if task.EndDate.Before(task.StartDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	// nil leaves the assignment list untouched
	var memberIDs *[]uuid.UUID
	if req.AssignedMembers != nil {
		ids := uniqueIDs(*req.AssignedMembers)
		if err := s.ensureMembersExist(ids); err != nil {
			return nil, err
		}
		memberIDs = &ids
	}

	if err := s.repo.UpdateWithAssignments(task, memberIDs); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	refreshSnapshot(s.snapshots, "update task")

	return s.GetTaskByID(id)
}

// UpdateTaskStatus moves a task to another status
func (s *TaskService) UpdateTaskStatus(id uuid.UUID, status string) (*TaskResponse, error) {
	next := models.TaskStatus(status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(id, next); err != nil {
		return nil, notFoundOr(err, apperrors.ErrTaskNotFound, "update task status")
	}
	refreshSnapshot(s.snapshots, "update task status")

	return s.GetTaskByID(id)
}

// DeleteTask deletes a task with everything it owns and all its ratings
func (s *TaskService) DeleteTask(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return notFoundOr(err, apperrors.ErrTaskNotFound, "delete task")
	}
	refreshSnapshot(s.snapshots, "delete task")
	return nil
}

// AddSubtask appends a subtask to a task
func (s *TaskService) AddSubtask(taskID uuid.UUID, req *AddSubtaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if _, err := s.repo.GetByID(taskID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrTaskNotFound, "get task")
	}

	if err := s.repo.AddSubtask(&models.Subtask{TaskID: taskID, Title: req.Title}); err != nil {
		return nil, fmt.Errorf("failed to add subtask: %w", err)
	}
	refreshSnapshot(s.snapshots, "add subtask")

	return s.GetTaskByID(taskID)
}

// ToggleSubtask flips the completion flag of a subtask
func (s *TaskService) ToggleSubtask(taskID, subtaskID uuid.UUID) (*TaskResponse, error) {
	subtask, err := s.repo.GetSubtask(taskID, subtaskID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrSubtaskNotFound, "get subtask")
	}

	if err := s.repo.SetSubtaskCompleted(subtask.ID, !subtask.Completed); err != nil {
		return nil, notFoundOr(err, apperrors.ErrSubtaskNotFound, "toggle subtask")
	}
	refreshSnapshot(s.snapshots, "toggle subtask")

	return s.GetTaskByID(taskID)
}

// AddAttachment stores a base64 encoded file on a task
func (s *TaskService) AddAttachment(taskID uuid.UUID, req *AddAttachmentRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if !isBase64Payload(req.Base64Data) {
		return nil, apperrors.ErrInvalidAttachment
	}
	if _, err := s.repo.GetByID(taskID); err != nil {
		return nil, notFoundOr(err, apperrors.ErrTaskNotFound, "get task")
	}

	attachment := &models.TaskAttachment{
		TaskID:     taskID,
		Name:       req.Name,
		Type:       req.Type,
		Base64Data: req.Base64Data,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repo.AddAttachment(attachment); err != nil {
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}
	refreshSnapshot(s.snapshots, "add attachment")

	return s.GetTaskByID(taskID)
}

func (s *TaskService) search(filter repository.TaskFilter) ([]TaskResponse, error) {
	tasks, err := s.repo.Search(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return toTaskResponses(tasks), nil
}

func (s *TaskService) ensureMembersExist(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	existing, err := s.memberRepo.GetExistingIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to check assigned members: %w", err)
	}
	if len(existing) != len(ids) {
		return apperrors.ErrAssignedMemberGone
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping first occurrences in order
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// isBase64Payload accepts plain base64 or a data URL such as "data:image/png;base64,..."
func isBase64Payload(data string) bool {
	if strings.HasPrefix(data, "data:") {
		header, payload, ok := strings.Cut(data, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return false
		}
		data = payload
	}
	if data == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(data)
	return err == nil
}

func toTaskResponse(task *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		StartDate:       task.StartDate.Format(timestampLayout),
		EndDate:         task.EndDate.Format(timestampLayout),
		Status:          string(task.Status),
		AssignedMembers: task.AssignedMemberIDs(),
		Subtasks:        make([]SubtaskResponse, len(task.Subtasks)),
		Attachments:     make([]AttachmentResponse, len(task.Attachments)),
		CreatedAt:       task.CreatedAt.Format(timestampLayout),
		UpdatedAt:       task.UpdatedAt.Format(timestampLayout),
	}
	for i, st := range task.Subtasks {
		resp.Subtasks[i] = SubtaskResponse{ID: st.ID, Title: st.Title, Completed: st.Completed}
	}
	for i, a := range task.Attachments {
		resp.Attachments[i] = AttachmentResponse{
			ID:         a.ID,
			Name:       a.Name,
			Type:       a.Type,
			Base64Data: a.Base64Data,
			UploadedAt: a.UploadedAt.Format(timestampLayout),
		}
	}
	return resp
}

func toTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i := range tasks {
		responses[i] = *toTaskResponse(&tasks[i])
	}
	return responses
}
