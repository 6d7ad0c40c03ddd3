package stats

import (
	"sort"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeaderboardEntry ranks one member by their overall statistics
type LeaderboardEntry struct {
	Member models.Member `json:"member"`
	Stats  MemberStats   `json:"stats"`
}

// TaskLeaderboardEntry ranks one assigned member by their ratings on a single task
type TaskLeaderboardEntry struct {
	Member        models.Member `json:"member"`
	AverageRating float64       `json:"average_rating"`
	RatingsCount  int           `json:"ratings_count"`
}

// Leaderboard ranks every member by average rating, highest first.
// Members with equal averages keep their snapshot order.
func (s Snapshot) Leaderboard() []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(s.Members))
	for _, m := range s.Members {
		entries = append(entries, LeaderboardEntry{Member: m, Stats: s.MemberStatistics(m.ID)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stats.AverageRating > entries[j].Stats.AverageRating
	})
	return entries
}

// TaskLeaderboard ranks the members assigned to a task by their ratings on that task
// only, highest first. Assigned ids without a member record are dropped, repeated ids
// count once, and ties keep assignment order. An unknown task yields an empty slice.
func (s Snapshot) TaskLeaderboard(taskID uuid.UUID) []TaskLeaderboardEntry {
	entries := []TaskLeaderboardEntry{}

	task, ok := s.FindTask(taskID)
	if !ok {
		return entries
	}

	members := s.memberIndex()
	seen := make(map[uuid.UUID]struct{})
	for _, memberID := range task.AssignedMemberIDs() {
		if _, dup := seen[memberID]; dup {
			continue
		}
		seen[memberID] = struct{}{}

		member, ok := members[memberID]
		if !ok {
			continue
		}

		ratings := s.ratingsFor(taskID, memberID)
		entries = append(entries, TaskLeaderboardEntry{
			Member:        member,
			AverageRating: MeanRating(ratings),
			RatingsCount:  len(ratings),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageRating > entries[j].AverageRating
	})
	return entries
}

func (s Snapshot) memberIndex() map[uuid.UUID]models.Member {
	index := make(map[uuid.UUID]models.Member, len(s.Members))
	for _, m := range s.Members {
		index[m.ID] = m
	}
	return index
}

func (s Snapshot) ratingsFor(taskID, memberID uuid.UUID) []models.Rating {
	var out []models.Rating
	for _, r := range s.Ratings {
		if r.TaskID == taskID && r.MemberID == memberID {
			out = append(out, r)
		}
	}
	return out
}
