package service

import (
	"performance-tracker-backend/internal/stats"

	"github.com/google/uuid"
)

// StatsService answers statistics queries from the current snapshot. Unknown ids
// yield zero values rather than errors.
type StatsService struct {
	snapshots   SnapshotProvider
	recentLimit int
}

// NewStatsService creates a new stats service. recentLimit bounds the dashboard's recent ratings.
func NewStatsService(snapshots SnapshotProvider, recentLimit int) *StatsService {
	return &StatsService{snapshots: snapshots, recentLimit: recentLimit}
}

// GetMemberStats returns the derived statistics of a member
func (s *StatsService) GetMemberStats(memberID uuid.UUID) stats.MemberStats {
	return s.snapshots.Snapshot().MemberStatistics(memberID)
}

// GetMemberDimensions returns the per-dimension averages of a member
func (s *StatsService) GetMemberDimensions(memberID uuid.UUID) stats.DimensionAverages {
	return s.snapshots.Snapshot().MemberDimensionAverages(memberID)
}

// GetLeaderboard ranks all members by average rating
func (s *StatsService) GetLeaderboard() []stats.LeaderboardEntry {
	return s.snapshots.Snapshot().Leaderboard()
}

// GetTaskLeaderboard ranks a task's assigned members by their ratings on it
func (s *StatsService) GetTaskLeaderboard(taskID uuid.UUID) []stats.TaskLeaderboardEntry {
	return s.snapshots.Snapshot().TaskLeaderboard(taskID)
}

// GetTaskStats returns subtask progress and rating figures of a task
func (s *StatsService) GetTaskStats(taskID uuid.UUID) stats.TaskStats {
	return s.snapshots.Snapshot().TaskStatistics(taskID)
}

// GetDashboard returns the team-wide summary
func (s *StatsService) GetDashboard() stats.Summary {
	return s.snapshots.Snapshot().Summary(s.recentLimit)
}
