package stats

import (
	"sort"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// TaskStats summarises the progress and ratings of one task
type TaskStats struct {
	TotalAssignees        int                   `json:"total_assignees"`
	TotalSubtasks         int                   `json:"total_subtasks"`
	CompletedSubtasks     int                   `json:"completed_subtasks"`
	SubtaskCompletionRate float64               `json:"subtask_completion_rate"`
	TotalRatings          int                   `json:"total_ratings"`
	AverageRatings        map[uuid.UUID]float64 `json:"average_ratings"`
}

// RecentRating is a rating enriched with what the dashboard shows next to it
type RecentRating struct {
	Rating        models.Rating `json:"rating"`
	AverageRating float64       `json:"average_rating"`
	MemberName    string        `json:"member_name"`
	TaskTitle     string        `json:"task_title"`
}

// Summary holds the team-wide dashboard figures
type Summary struct {
	TotalMembers   int            `json:"total_members"`
	TotalTasks     int            `json:"total_tasks"`
	ActiveTasks    int            `json:"active_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	CompletionRate float64        `json:"completion_rate"`
	TotalRatings   int            `json:"total_ratings"`
	RecentRatings  []RecentRating `json:"recent_ratings"`
}

// TaskStatistics derives subtask progress and per-assignee averages for a task.
// An unknown task yields zero values and an empty average map.
func (s Snapshot) TaskStatistics(taskID uuid.UUID) TaskStats {
	stats := TaskStats{AverageRatings: map[uuid.UUID]float64{}}

	task, ok := s.FindTask(taskID)
	if !ok {
		return stats
	}

	stats.TotalSubtasks = len(task.Subtasks)
	stats.CompletedSubtasks = task.CompletedSubtasks()
	stats.SubtaskCompletionRate = percentage(stats.CompletedSubtasks, stats.TotalSubtasks)
	stats.TotalRatings = len(s.TaskRatings(taskID))

	for _, memberID := range task.AssignedMemberIDs() {
		if _, dup := stats.AverageRatings[memberID]; dup {
			continue
		}
		stats.AverageRatings[memberID] = MeanRating(s.ratingsFor(taskID, memberID))
	}
	stats.TotalAssignees = len(stats.AverageRatings)

	return stats
}

// Summary computes the dashboard figures. recent bounds how many of the newest
// ratings are returned; references that no longer resolve leave names blank.
func (s Snapshot) Summary(recent int) Summary {
	summary := Summary{
		TotalMembers:  len(s.Members),
		TotalTasks:    len(s.Tasks),
		TotalRatings:  len(s.Ratings),
		RecentRatings: []RecentRating{},
	}

	for _, t := range s.Tasks {
		if t.Status == models.TaskStatusCompleted {
			summary.CompletedTasks++
		} else {
			summary.ActiveTasks++
		}
	}
	summary.CompletionRate = percentage(summary.CompletedTasks, summary.TotalTasks)

	if recent <= 0 {
		return summary
	}

	ratings := make([]models.Rating, len(s.Ratings))
	copy(ratings, s.Ratings)
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Timestamp.After(ratings[j].Timestamp)
	})
	if len(ratings) > recent {
		ratings = ratings[:recent]
	}

	members := s.memberIndex()
	for _, r := range ratings {
		entry := RecentRating{Rating: r, AverageRating: AverageRating(r)}
		if m, ok := members[r.MemberID]; ok {
			entry.MemberName = m.Name
		}
		if t, ok := s.FindTask(r.TaskID); ok {
			entry.TaskTitle = t.Title
		}
		summary.RecentRatings = append(summary.RecentRatings, entry)
	}

	return summary
}
