package stats

import (
	"testing"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStatistics(t *testing.T) {
	t.Run("subtasks and per assignee averages", func(t *testing.T) {
		a, b := member("A"), member("B")
		tk := task("T", models.TaskStatusInProgress, a.ID, b.ID)
		tk.Subtasks = []models.Subtask{{Title: "one", Completed: true}, {Title: "two"}, {Title: "three"}, {Title: "four", Completed: true}}
		snap := Snapshot{
			Members: []models.Member{a, b},
			Tasks:   []models.Task{tk},
			Ratings: []models.Rating{
				uniform(tk.ID, a.ID, 4, day1),
				uniform(tk.ID, a.ID, 2, day1),
				uniform(uuid.New(), b.ID, 5, day1),
			},
		}

		got := snap.TaskStatistics(tk.ID)

		assert.Equal(t, 2, got.TotalAssignees)
		assert.Equal(t, 4, got.TotalSubtasks)
		assert.Equal(t, 2, got.CompletedSubtasks)
		assert.Equal(t, 50.0, got.SubtaskCompletionRate)
		assert.Equal(t, 2, got.TotalRatings)
		assert.Equal(t, map[uuid.UUID]float64{a.ID: 3, b.ID: 0}, got.AverageRatings)
	})

	t.Run("no subtasks", func(t *testing.T) {
		tk := task("T", models.TaskStatusNotStarted)
		got := Snapshot{Tasks: []models.Task{tk}}.TaskStatistics(tk.ID)
		assert.Equal(t, 0.0, got.SubtaskCompletionRate)
	})

	t.Run("unknown task", func(t *testing.T) {
		got := Snapshot{}.TaskStatistics(uuid.New())
		assert.Equal(t, TaskStats{AverageRatings: map[uuid.UUID]float64{}}, got)
	})
}

func TestSummary(t *testing.T) {
	a, b := member("A"), member("B")
	done := task("Done", models.TaskStatusCompleted, a.ID)
	open := task("Open", models.TaskStatusReview, b.ID)
	started := task("Started", models.TaskStatusInProgress, a.ID)
	oldest := uniform(done.ID, a.ID, 5, day1)
	middle := uniform(open.ID, b.ID, 3, day1.AddDate(0, 0, 1))
	newest := uniform(uuid.New(), a.ID, 2, day1.AddDate(0, 0, 2))
	snap := Snapshot{
		Members: []models.Member{a, b},
		Tasks:   []models.Task{done, open, started},
		Ratings: []models.Rating{middle, oldest, newest},
	}

	t.Run("counts and newest ratings first", func(t *testing.T) {
		got := snap.Summary(2)

		assert.Equal(t, 2, got.TotalMembers)
		assert.Equal(t, 3, got.TotalTasks)
		assert.Equal(t, 2, got.ActiveTasks)
		assert.Equal(t, 1, got.CompletedTasks)
		assert.InDelta(t, 33.333, got.CompletionRate, 0.001)
		assert.Equal(t, 3, got.TotalRatings)

		require.Len(t, got.RecentRatings, 2)
		assert.Equal(t, newest.ID, got.RecentRatings[0].Rating.ID)
		assert.Equal(t, "A", got.RecentRatings[0].MemberName)
		assert.Empty(t, got.RecentRatings[0].TaskTitle)
		assert.Equal(t, 2.0, got.RecentRatings[0].AverageRating)
		assert.Equal(t, middle.ID, got.RecentRatings[1].Rating.ID)
		assert.Equal(t, "Open", got.RecentRatings[1].TaskTitle)
	})

	t.Run("snapshot order is untouched", func(t *testing.T) {
		snap.Summary(3)
		assert.Equal(t, middle.ID, snap.Ratings[0].ID)
	})

	t.Run("zero limit", func(t *testing.T) {
		got := snap.Summary(0)
		require.NotNil(t, got.RecentRatings)
		assert.Empty(t, got.RecentRatings)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		got := Snapshot{}.Summary(5)
		assert.Equal(t, 0.0, got.CompletionRate)
		assert.Empty(t, got.RecentRatings)
	})
}
