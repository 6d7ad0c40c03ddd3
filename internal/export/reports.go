package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"performance-tracker-backend/internal/database/models"
	"performance-tracker-backend/internal/stats"

	"github.com/google/uuid"
)

// MemberReport writes the performance report of one member
func MemberReport(w io.Writer, snap stats.Snapshot, member models.Member, generatedAt time.Time) error {
	memberStats := snap.MemberStatistics(member.ID)

	doc := newDocument("Member Performance Report", generatedAt)
	doc.title(member.Name)
	doc.line("Role: " + member.Role)
	doc.line("Contact: " + member.Contact)

	doc.heading("Summary Statistics")
	doc.table(memberSummaryTable(memberStats), lavender, false)

	doc.heading("Dimension-wise Performance")
	doc.table(dimensionTable(snap.MemberDimensionAverages(member.ID)), mint, false)

	doc.heading("Task Breakdown")
	doc.table(memberTaskTable(snap, member.ID), peach, true)

	return doc.write(w)
}

// TaskReport writes the report of one task and its assigned members
func TaskReport(w io.Writer, snap stats.Snapshot, task models.Task, generatedAt time.Time) error {
	doc := newDocument("Task Performance Report", generatedAt)
	doc.title(task.Title)
	doc.line("Status: " + task.Status.Label())
	doc.line(fmt.Sprintf("Timeline: %s - %s", task.StartDate.Format(dateLayout), task.EndDate.Format(dateLayout)))
	doc.line(fmt.Sprintf("Assigned Members: %d", len(task.Assignments)))
	if task.Description != "" {
		doc.pdf.Ln(4)
		doc.paragraph("Description:", task.Description)
	}

	doc.heading("Task Statistics")
	doc.table(taskStatsTable(snap.TaskStatistics(task.ID)), mint, false)

	doc.heading("Member Performance Leaderboard")
	doc.table(taskMemberTable(snap, task), peach, true)

	if len(task.Subtasks) > 0 {
		doc.heading("Subtask Checklist")
		doc.table(subtaskTable(task), lavender, false)
	}

	return doc.write(w)
}

// TeamReport writes the overall team leaderboard
func TeamReport(w io.Writer, snap stats.Snapshot, generatedAt time.Time) error {
	doc := newDocument("Overall Team Performance Report", generatedAt)

	doc.heading("Team Leaderboard")
	doc.table(teamTable(snap), lavender, true)

	return doc.write(w)
}

func memberSummaryTable(s stats.MemberStats) table {
	return table{
		headers: []string{"Metric", "Value"},
		rows: [][]string{
			{"Total Tasks Assigned", strconv.Itoa(s.TotalTasks)},
			{"Completed Tasks", strconv.Itoa(s.CompletedTasks)},
			{"Completion Rate", percent(s.CompletionRate)},
			{"Average Rating", outOfFive(s.AverageRating)},
		},
	}
}

func dimensionTable(d stats.DimensionAverages) table {
	return table{
		headers: []string{"Dimension", "Average Rating"},
		rows: [][]string{
			{"Quality of Work", outOfFive(d.Quality)},
			{"Timeliness", outOfFive(d.Timeliness)},
			{"Communication/Collaboration", outOfFive(d.Communication)},
			{"Initiative", outOfFive(d.Initiative)},
		},
	}
}

func memberTaskTable(snap stats.Snapshot, memberID uuid.UUID) table {
	memberRatings := snap.MemberRatings(memberID)

	t := table{headers: []string{"Task", "Status", "Avg Rating", "Ratings Count"}}
	for _, task := range snap.MemberTasks(memberID) {
		var onTask []models.Rating
		for _, r := range memberRatings {
			if r.TaskID == task.ID {
				onTask = append(onTask, r)
			}
		}

		avg := "Not Rated"
		if mean := stats.MeanRating(onTask); mean > 0 {
			avg = outOfFive(mean)
		}
		t.rows = append(t.rows, []string{task.Title, task.Status.Label(), avg, strconv.Itoa(len(onTask))})
	}
	return t
}

func taskStatsTable(s stats.TaskStats) table {
	return table{
		headers: []string{"Metric", "Value"},
		rows: [][]string{
			{"Total Subtasks", strconv.Itoa(s.TotalSubtasks)},
			{"Completed Subtasks", strconv.Itoa(s.CompletedSubtasks)},
			{"Completion Rate", percent(s.SubtaskCompletionRate)},
			{"Total Ratings", strconv.Itoa(s.TotalRatings)},
		},
	}
}

// taskMemberTable lists every assigned member, including ids whose member record is
// gone, sorted by their average on this task, highest first.
func taskMemberTable(snap stats.Snapshot, task models.Task) table {
	type entry struct {
		avg float64
		row []string
	}

	taskRatings := snap.TaskRatings(task.ID)
	seen := make(map[uuid.UUID]struct{})
	var entries []entry
	for _, memberID := range task.AssignedMemberIDs() {
		if _, dup := seen[memberID]; dup {
			continue
		}
		seen[memberID] = struct{}{}

		var memberRatings []models.Rating
		for _, r := range taskRatings {
			if r.MemberID == memberID {
				memberRatings = append(memberRatings, r)
			}
		}

		name := "Unknown"
		if m, ok := snap.FindMember(memberID); ok {
			name = m.Name
		}

		avg := stats.MeanRating(memberRatings)
		dims := stats.DimensionAveragesOf(memberRatings)
		entries = append(entries, entry{
			avg: avg,
			row: []string{
				name,
				scoreOr(avg, "N/A"),
				scoreOr(dims.Quality, "N/A"),
				scoreOr(dims.Timeliness, "N/A"),
				strconv.Itoa(len(memberRatings)),
			},
		})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].avg > entries[j].avg })

	t := table{headers: []string{"Member", "Avg Rating", "Quality", "Timeliness", "Ratings"}}
	for _, e := range entries {
		t.rows = append(t.rows, e.row)
	}
	return t
}

func subtaskTable(task models.Task) table {
	t := table{headers: []string{"Subtask", "Status"}}
	for _, s := range task.Subtasks {
		status := "Pending"
		if s.Completed {
			status = "Completed"
		}
		t.rows = append(t.rows, []string{s.Title, status})
	}
	return t
}

func teamTable(snap stats.Snapshot) table {
	t := table{headers: []string{"Member", "Role", "Tasks", "Completed", "Avg Rating", "Ratings"}}
	for _, e := range snap.Leaderboard() {
		t.rows = append(t.rows, []string{
			e.Member.Name,
			e.Member.Role,
			strconv.Itoa(e.Stats.TotalTasks),
			strconv.Itoa(e.Stats.CompletedTasks),
			scoreOr(e.Stats.AverageRating, "N/A"),
			strconv.Itoa(len(snap.MemberRatings(e.Member.ID))),
		})
	}
	return t
}
