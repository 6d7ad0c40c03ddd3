package service

import (
	"bytes"
	"fmt"
	"io"
	"time"

	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/export"

	"github.com/google/uuid"
)

// ExportService renders PDF reports from the current snapshot
type ExportService struct {
	snapshots SnapshotProvider
	now       func() time.Time
}

// NewExportService creates a new export service
func NewExportService(snapshots SnapshotProvider) *ExportService {
	return &ExportService{snapshots: snapshots, now: time.Now}
}

// MemberReport writes the report of an existing member
func (s *ExportService) MemberReport(w io.Writer, memberID uuid.UUID) (string, error) {
	snap := s.snapshots.Snapshot()
	member, ok := snap.FindMember(memberID)
	if !ok {
		return "", apperrors.ErrMemberNotFound
	}
	return export.MemberFileName(member.Name), render(w, func(buf io.Writer) error {
		return export.MemberReport(buf, snap, member, s.now())
	})
}

// TaskReport writes the report of an existing task
func (s *ExportService) TaskReport(w io.Writer, taskID uuid.UUID) (string, error) {
	snap := s.snapshots.Snapshot()
	task, ok := snap.FindTask(taskID)
	if !ok {
		return "", apperrors.ErrTaskNotFound
	}
	return export.TaskFileName(task.Title), render(w, func(buf io.Writer) error {
		return export.TaskReport(buf, snap, task, s.now())
	})
}

// TeamReport writes the team leaderboard report
func (s *ExportService) TeamReport(w io.Writer) (string, error) {
	snap := s.snapshots.Snapshot()
	now := s.now()
	return export.TeamFileName(now), render(w, func(buf io.Writer) error {
		return export.TeamReport(buf, snap, now)
	})
}

// render buffers the document so nothing reaches w when rendering fails
func render(w io.Writer, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
