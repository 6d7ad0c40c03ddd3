package service

import (
	"context"
	"io"

	"performance-tracker-backend/internal/stats"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SnapshotProvider exposes the current statistics snapshot and rebuilds it on demand
type SnapshotProvider interface {
	Snapshot() stats.Snapshot
	Refresh(ctx context.Context) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	CreateMember(req *CreateMemberRequest) (*MemberResponse, error)
	GetMemberByID(id uuid.UUID) (*MemberResponse, error)
	ListMembers(query string) ([]MemberResponse, error)
	UpdateMember(id uuid.UUID, req *UpdateMemberRequest) (*MemberResponse, error)
	DeleteMember(id uuid.UUID) error
}

// TaskServiceInterface defines the interface for task service
type TaskServiceInterface interface {
	CreateTask(req *CreateTaskRequest) (*TaskResponse, error)
	GetTaskByID(id uuid.UUID) (*TaskResponse, error)
	ListTasks(query, status string) ([]TaskResponse, error)
	ListArchivedTasks(query string) ([]TaskResponse, error)
	GetTasksByMember(memberID uuid.UUID) ([]TaskResponse, error)
	UpdateTask(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	UpdateTaskStatus(id uuid.UUID, status string) (*TaskResponse, error)
	DeleteTask(id uuid.UUID) error
	AddSubtask(taskID uuid.UUID, req *AddSubtaskRequest) (*TaskResponse, error)
	ToggleSubtask(taskID, subtaskID uuid.UUID) (*TaskResponse, error)
	AddAttachment(taskID uuid.UUID, req *AddAttachmentRequest) (*TaskResponse, error)
}

// RatingServiceInterface defines the interface for rating service
type RatingServiceInterface interface {
	CreateRating(req *CreateRatingRequest) (*RatingResponse, error)
	GetRatingsByTask(taskID uuid.UUID) ([]RatingResponse, error)
	GetRatingsByMember(memberID uuid.UUID) ([]RatingResponse, error)
	GetRatingsByTaskAndMember(taskID, memberID uuid.UUID) ([]RatingResponse, error)
	DeleteRating(id uuid.UUID) error
}

// StatsServiceInterface defines the read-only statistics queries
type StatsServiceInterface interface {
	GetMemberStats(memberID uuid.UUID) stats.MemberStats
	GetMemberDimensions(memberID uuid.UUID) stats.DimensionAverages
	GetLeaderboard() []stats.LeaderboardEntry
	GetTaskLeaderboard(taskID uuid.UUID) []stats.TaskLeaderboardEntry
	GetTaskStats(taskID uuid.UUID) stats.TaskStats
	GetDashboard() stats.Summary
}

// ExportServiceInterface renders reports. Each method returns the download file name.
type ExportServiceInterface interface {
	MemberReport(w io.Writer, memberID uuid.UUID) (string, error)
	TaskReport(w io.Writer, taskID uuid.UUID) (string, error)
	TeamReport(w io.Writer) (string, error)
}
