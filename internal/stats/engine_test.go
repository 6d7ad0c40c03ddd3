package stats

import (
	"testing"
	"time"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(name string) models.Member {
	m := models.Member{Name: name, Role: "Engineer"}
	m.ID = uuid.New()
	return m
}

func task(title string, status models.TaskStatus, assignees ...uuid.UUID) models.Task {
	t := models.Task{Title: title, Status: status}
	t.ID = uuid.New()
	for i, id := range assignees {
		t.Assignments = append(t.Assignments, models.TaskAssignment{TaskID: t.ID, MemberID: id, Position: i})
	}
	return t
}

func rating(taskID, memberID uuid.UUID, q, tl, c, i int, ts time.Time) models.Rating {
	r := models.Rating{
		TaskID:     taskID,
		MemberID:   memberID,
		Dimensions: models.RatingDimensions{Quality: q, Timeliness: tl, Communication: c, Initiative: i},
		Mode:       models.RatingModeDaily,
		Timestamp:  ts,
	}
	r.ID = uuid.New()
	return r
}

func uniform(taskID, memberID uuid.UUID, score int, ts time.Time) models.Rating {
	return rating(taskID, memberID, score, score, score, score, ts)
}

var day1 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		dims     [4]int
		expected float64
	}{
		{"all fives", [4]int{5, 5, 5, 5}, 5},
		{"mixed", [4]int{5, 4, 3, 2}, 3.5},
		{"quarter step", [4]int{1, 1, 1, 2}, 1.25},
		{"not clamped", [4]int{10, 0, -2, 4}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rating(uuid.New(), uuid.New(), tt.dims[0], tt.dims[1], tt.dims[2], tt.dims[3], day1)
			assert.Equal(t, tt.expected, AverageRating(r))
		})
	}
}

func TestMemberStatistics(t *testing.T) {
	t.Run("example from two tasks", func(t *testing.T) {
		m := member("Ada")
		t1 := task("T1", models.TaskStatusCompleted, m.ID)
		t2 := task("T2", models.TaskStatusInProgress, m.ID)
		snap := Snapshot{
			Members: []models.Member{m},
			Tasks:   []models.Task{t1, t2},
			Ratings: []models.Rating{
				uniform(t1.ID, m.ID, 5, day1),
				uniform(t2.ID, m.ID, 1, day1.AddDate(0, 0, 1)),
			},
		}

		got := snap.MemberStatistics(m.ID)

		assert.Equal(t, 2, got.TotalTasks)
		assert.Equal(t, 1, got.CompletedTasks)
		assert.Equal(t, 50.0, got.CompletionRate)
		assert.Equal(t, 3.0, got.AverageRating)
		assert.Len(t, got.RatingTrend, 2)
	})

	t.Run("no ratings", func(t *testing.T) {
		m := member("Ada")
		snap := Snapshot{
			Members: []models.Member{m},
			Tasks:   []models.Task{task("T1", models.TaskStatusReview, m.ID)},
		}

		got := snap.MemberStatistics(m.ID)

		assert.Equal(t, 0.0, got.AverageRating)
		require.NotNil(t, got.RatingTrend)
		assert.Empty(t, got.RatingTrend)
	})

	t.Run("no tasks", func(t *testing.T) {
		m := member("Ada")
		snap := Snapshot{
			Members: []models.Member{m},
			Ratings: []models.Rating{uniform(uuid.New(), m.ID, 4, day1)},
		}

		got := snap.MemberStatistics(m.ID)

		assert.Equal(t, 0, got.TotalTasks)
		assert.Equal(t, 0.0, got.CompletionRate)
		assert.Equal(t, 4.0, got.AverageRating)
	})

	t.Run("unknown member on empty snapshot", func(t *testing.T) {
		got := Snapshot{}.MemberStatistics(uuid.New())

		assert.Equal(t, MemberStats{RatingTrend: []TrendPoint{}}, got)
	})
}

func TestTrend(t *testing.T) {
	m := uuid.New()
	tk := uuid.New()

	t.Run("same day collapses to mean", func(t *testing.T) {
		ratings := []models.Rating{
			uniform(tk, m, 4, day1),
			uniform(tk, m, 2, day1.Add(8*time.Hour)),
		}

		got := Trend(ratings)

		want := []TrendPoint{{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Rating: 3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Trend() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("ascending by date regardless of input order", func(t *testing.T) {
		ratings := []models.Rating{
			uniform(tk, m, 3, day1.AddDate(0, 0, 2)),
			uniform(tk, m, 5, day1),
			uniform(tk, m, 1, day1.AddDate(0, 0, 1)),
		}

		got := Trend(ratings)

		want := []TrendPoint{
			{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Rating: 5},
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Rating: 1},
			{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Rating: 3},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Trend() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("day is taken in UTC", func(t *testing.T) {
		berlin := time.FixedZone("CET", 60*60)
		ratings := []models.Rating{
			uniform(tk, m, 4, time.Date(2024, 3, 2, 0, 30, 0, 0, berlin)),
			uniform(tk, m, 2, time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)),
		}

		got := Trend(ratings)

		require.Len(t, got, 1)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got[0].Date)
		assert.Equal(t, 3.0, got[0].Rating)
	})

	t.Run("empty", func(t *testing.T) {
		got := Trend(nil)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestMemberDimensionAverages(t *testing.T) {
	t.Run("no ratings", func(t *testing.T) {
		got := Snapshot{}.MemberDimensionAverages(uuid.New())
		assert.Equal(t, DimensionAverages{}, got)
	})

	t.Run("each dimension independently", func(t *testing.T) {
		m := uuid.New()
		other := uuid.New()
		snap := Snapshot{Ratings: []models.Rating{
			rating(uuid.New(), m, 5, 4, 3, 2, day1),
			rating(uuid.New(), m, 3, 4, 5, 1, day1),
			rating(uuid.New(), other, 1, 1, 1, 1, day1),
		}}

		got := snap.MemberDimensionAverages(m)

		want := DimensionAverages{Quality: 4, Timeliness: 4, Communication: 4, Initiative: 1.5}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("MemberDimensionAverages() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestMeanRating(t *testing.T) {
	assert.Equal(t, 0.0, MeanRating(nil))
	assert.Equal(t, 3.0, MeanRating([]models.Rating{
		uniform(uuid.New(), uuid.New(), 5, day1),
		uniform(uuid.New(), uuid.New(), 1, day1),
	}))
}

func TestLookups(t *testing.T) {
	a := member("Ada")
	b := member("Bob")
	t1 := task("T1", models.TaskStatusCompleted, a.ID)
	t2 := task("T2", models.TaskStatusInProgress, a.ID, b.ID)
	r1 := uniform(t1.ID, a.ID, 4, day1)
	r2 := uniform(t2.ID, b.ID, 3, day1)
	snap := Snapshot{
		Members: []models.Member{a, b},
		Tasks:   []models.Task{t1, t2},
		Ratings: []models.Rating{r1, r2},
	}

	found, ok := snap.FindMember(b.ID)
	assert.True(t, ok)
	assert.Equal(t, "Bob", found.Name)

	_, ok = snap.FindMember(uuid.New())
	assert.False(t, ok)

	foundTask, ok := snap.FindTask(t2.ID)
	assert.True(t, ok)
	assert.Equal(t, "T2", foundTask.Title)

	_, ok = snap.FindTask(uuid.New())
	assert.False(t, ok)

	assert.Len(t, snap.MemberTasks(a.ID), 2)
	assert.Len(t, snap.MemberTasks(b.ID), 1)
	assert.Equal(t, []models.Rating{r2}, snap.MemberRatings(b.ID))
	assert.Equal(t, []models.Rating{r1}, snap.TaskRatings(t1.ID))
}
