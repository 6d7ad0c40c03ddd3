// Package stats derives performance statistics from a snapshot of members, tasks and
// ratings. Every function is pure: it reads the snapshot, never mutates it, and degrades
// to zero values instead of failing when data is missing.
package stats

import (
	"sort"
	"time"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// Snapshot is a self-contained, point-in-time copy of the three collections
type Snapshot struct {
	Members []models.Member
	Tasks   []models.Task
	Ratings []models.Rating
}

// DimensionAverages holds the independent mean of each rating dimension
type DimensionAverages struct {
	Quality       float64 `json:"quality"`
	Timeliness    float64 `json:"timeliness"`
	Communication float64 `json:"communication"`
	Initiative    float64 `json:"initiative"`
}

// TrendPoint is the mean rating of one calendar day (UTC)
type TrendPoint struct {
	Date   time.Time `json:"date"`
	Rating float64   `json:"rating"`
}

// MemberStats is the derived performance record of one member
type MemberStats struct {
	TotalTasks     int          `json:"total_tasks"`
	CompletedTasks int          `json:"completed_tasks"`
	AverageRating  float64      `json:"average_rating"`
	CompletionRate float64      `json:"completion_rate"`
	RatingTrend    []TrendPoint `json:"rating_trend"`
}

// AverageRating is the mean of the four dimension scores of a rating
func AverageRating(r models.Rating) float64 {
	d := r.Dimensions
	return float64(d.Quality+d.Timeliness+d.Communication+d.Initiative) / 4
}

// MeanRating averages AverageRating over ratings; 0 when there are none
func MeanRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0.0
	for _, r := range ratings {
		total += AverageRating(r)
	}
	return total / float64(len(ratings))
}

// DimensionAveragesOf averages each dimension independently; all four are 0 when there are no ratings
func DimensionAveragesOf(ratings []models.Rating) DimensionAverages {
	if len(ratings) == 0 {
		return DimensionAverages{}
	}
	var q, t, c, i int
	for _, r := range ratings {
		q += r.Dimensions.Quality
		t += r.Dimensions.Timeliness
		c += r.Dimensions.Communication
		i += r.Dimensions.Initiative
	}
	n := float64(len(ratings))
	return DimensionAverages{
		Quality:       float64(q) / n,
		Timeliness:    float64(t) / n,
		Communication: float64(c) / n,
		Initiative:    float64(i) / n,
	}
}

// Trend groups ratings by UTC calendar day and returns one mean point per day, oldest first
func Trend(ratings []models.Rating) []TrendPoint {
	byDay := make(map[time.Time][]float64)
	for _, r := range ratings {
		day := calendarDay(r.Timestamp)
		byDay[day] = append(byDay[day], AverageRating(r))
	}

	points := make([]TrendPoint, 0, len(byDay))
	for day, values := range byDay {
		total := 0.0
		for _, v := range values {
			total += v
		}
		points = append(points, TrendPoint{Date: day, Rating: total / float64(len(values))})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func calendarDay(ts time.Time) time.Time {
	y, m, d := ts.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// percentage returns part/whole*100, or 0 when whole is 0
func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// MemberStatistics derives task counts, completion rate, average rating and the rating
// trend of a member. An unknown member yields zero values and an empty trend.
func (s Snapshot) MemberStatistics(memberID uuid.UUID) MemberStats {
	var stats MemberStats
	for i := range s.Tasks {
		if !s.Tasks[i].IsAssigned(memberID) {
			continue
		}
		stats.TotalTasks++
		if s.Tasks[i].Status == models.TaskStatusCompleted {
			stats.CompletedTasks++
		}
	}
	stats.CompletionRate = percentage(stats.CompletedTasks, stats.TotalTasks)

	ratings := s.MemberRatings(memberID)
	stats.AverageRating = MeanRating(ratings)
	stats.RatingTrend = Trend(ratings)
	return stats
}

// MemberDimensionAverages averages each rating dimension over all of a member's ratings
func (s Snapshot) MemberDimensionAverages(memberID uuid.UUID) DimensionAverages {
	return DimensionAveragesOf(s.MemberRatings(memberID))
}

// FindMember looks a member up by id
func (s Snapshot) FindMember(id uuid.UUID) (models.Member, bool) {
	for _, m := range s.Members {
		if m.ID == id {
			return m, true
		}
	}
	return models.Member{}, false
}

// FindTask looks a task up by id
func (s Snapshot) FindTask(id uuid.UUID) (models.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// MemberRatings returns the ratings given to a member, in snapshot order
func (s Snapshot) MemberRatings(memberID uuid.UUID) []models.Rating {
	var out []models.Rating
	for _, r := range s.Ratings {
		if r.MemberID == memberID {
			out = append(out, r)
		}
	}
	return out
}

// TaskRatings returns the ratings recorded on a task, in snapshot order
func (s Snapshot) TaskRatings(taskID uuid.UUID) []models.Rating {
	var out []models.Rating
	for _, r := range s.Ratings {
		if r.TaskID == taskID {
			out = append(out, r)
		}
	}
	return out
}

// MemberTasks returns the tasks a member is assigned to, in snapshot order
func (s Snapshot) MemberTasks(memberID uuid.UUID) []models.Task {
	var out []models.Task
	for _, t := range s.Tasks {
		if t.IsAssigned(memberID) {
			out = append(out, t)
		}
	}
	return out
}
