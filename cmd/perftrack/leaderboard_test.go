package main

import (
	"testing"

	"performance-tracker-backend/internal/database/models"
	"performance-tracker-backend/internal/stats"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLeaderboardRows(t *testing.T) {
	entries := []stats.LeaderboardEntry{
		{
			Member: models.Member{Name: "Alice", Role: "Engineer"},
			Stats:  stats.MemberStats{TotalTasks: 3, CompletedTasks: 2, CompletionRate: 200.0 / 3, AverageRating: 4.375},
		},
		{
			Member: models.Member{Name: "Bob", Role: "Designer"},
			Stats:  stats.MemberStats{},
		},
	}

	want := [][]string{
		{"1", "Alice", "Engineer", "3", "2", "66.7%", "4.38"},
		{"2", "Bob", "Designer", "0", "0", "0.0%", "N/A"},
	}
	if diff := cmp.Diff(want, leaderboardRows(entries)); diff != "" {
		t.Errorf("leaderboardRows mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderLeaderboard(t *testing.T) {
	assert.Equal(t, "No members yet.", renderLeaderboard(nil))

	out := renderLeaderboard([]stats.LeaderboardEntry{
		{Member: models.Member{Name: "Alice", Role: "Engineer"}, Stats: stats.MemberStats{AverageRating: 5}},
	})
	assert.Contains(t, out, "Avg Rating")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "5.00")
}
