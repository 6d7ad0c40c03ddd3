package export

import (
	"bytes"
	"testing"
	"time"

	"performance-tracker-backend/internal/database/models"
	"performance-tracker-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	snap   stats.Snapshot
	ada    models.Member
	bob    models.Member
	done   models.Task
	open   models.Task
	goneID uuid.UUID
}

func newFixture() fixture {
	f := fixture{goneID: uuid.New()}
	f.ada = models.Member{Name: "Ada Lovelace", Role: "Engineer", Contact: "ada@example.com"}
	f.ada.ID = uuid.New()
	f.bob = models.Member{Name: "Bob", Role: "Designer"}
	f.bob.ID = uuid.New()

	f.done = models.Task{
		Title:     "Ship API",
		Status:    models.TaskStatusCompleted,
		StartDate: generatedAt.AddDate(0, 0, -10),
		EndDate:   generatedAt.AddDate(0, 0, -3),
		Subtasks:  []models.Subtask{{Title: "design", Completed: true}, {Title: "build"}},
	}
	f.done.ID = uuid.New()
	f.done.Assignments = []models.TaskAssignment{
		{TaskID: f.done.ID, MemberID: f.bob.ID, Position: 0},
		{TaskID: f.done.ID, MemberID: f.goneID, Position: 1},
		{TaskID: f.done.ID, MemberID: f.ada.ID, Position: 2},
	}

	f.open = models.Task{Title: "Write docs", Status: models.TaskStatusInProgress}
	f.open.ID = uuid.New()
	f.open.Assignments = []models.TaskAssignment{{TaskID: f.open.ID, MemberID: f.ada.ID}}

	rate := func(taskID, memberID uuid.UUID, q, t, c, i int) models.Rating {
		r := models.Rating{
			TaskID:     taskID,
			MemberID:   memberID,
			Dimensions: models.RatingDimensions{Quality: q, Timeliness: t, Communication: c, Initiative: i},
			Timestamp:  generatedAt,
		}
		r.ID = uuid.New()
		return r
	}

	f.snap = stats.Snapshot{
		Members: []models.Member{f.ada, f.bob},
		Tasks:   []models.Task{f.done, f.open},
		Ratings: []models.Rating{
			rate(f.done.ID, f.ada.ID, 5, 5, 4, 4),
			rate(f.done.ID, f.bob.ID, 3, 3, 3, 3),
			rate(f.open.ID, f.bob.ID, 1, 1, 1, 1),
		},
	}
	return f
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "Ada_Lovelace_Performance_Report.pdf", MemberFileName("Ada  Lovelace"))
	assert.Equal(t, "Ship_the_API_Task_Report.pdf", TaskFileName(" Ship the\tAPI "))
	assert.Equal(t, "Q1-Q2_plan_Task_Report.pdf", TaskFileName("Q1/Q2 plan"))
	assert.Equal(t, "Untitled_Task_Report.pdf", TaskFileName("   "))
	assert.Equal(t, "Team_Performance_Report_2024-03-15.pdf", TeamFileName(generatedAt))
}

func TestMemberTables(t *testing.T) {
	f := newFixture()

	summary := memberSummaryTable(f.snap.MemberStatistics(f.ada.ID))
	assert.Equal(t, [][]string{
		{"Total Tasks Assigned", "2"},
		{"Completed Tasks", "1"},
		{"Completion Rate", "50.0%"},
		{"Average Rating", "4.50/5.0"},
	}, summary.rows)

	dims := dimensionTable(f.snap.MemberDimensionAverages(f.ada.ID))
	assert.Equal(t, []string{"Quality of Work", "5.00/5.0"}, dims.rows[0])
	assert.Equal(t, []string{"Communication/Collaboration", "4.00/5.0"}, dims.rows[2])

	tasks := memberTaskTable(f.snap, f.ada.ID)
	assert.Equal(t, [][]string{
		{"Ship API", "COMPLETED", "4.50/5.0", "1"},
		{"Write docs", "IN PROGRESS", "Not Rated", "0"},
	}, tasks.rows)
}

func TestTaskTables(t *testing.T) {
	f := newFixture()

	statsTable := taskStatsTable(f.snap.TaskStatistics(f.done.ID))
	assert.Equal(t, [][]string{
		{"Total Subtasks", "2"},
		{"Completed Subtasks", "1"},
		{"Completion Rate", "50.0%"},
		{"Total Ratings", "2"},
	}, statsTable.rows)

	members := taskMemberTable(f.snap, f.done)
	assert.Equal(t, [][]string{
		{"Ada Lovelace", "4.50", "5.00", "5.00", "1"},
		{"Bob", "3.00", "3.00", "3.00", "1"},
		{"Unknown", "N/A", "N/A", "N/A", "0"},
	}, members.rows)

	subtasks := subtaskTable(f.done)
	assert.Equal(t, [][]string{{"design", "Completed"}, {"build", "Pending"}}, subtasks.rows)
}

func TestTeamTable(t *testing.T) {
	f := newFixture()
	loner := models.Member{Name: "Cy", Role: "PM"}
	loner.ID = uuid.New()
	f.snap.Members = append(f.snap.Members, loner)

	team := teamTable(f.snap)

	assert.Equal(t, [][]string{
		{"Ada Lovelace", "Engineer", "2", "1", "4.50", "1"},
		{"Bob", "Designer", "1", "1", "2.00", "2"},
		{"Cy", "PM", "0", "0", "N/A", "0"},
	}, team.rows)
}

func TestReportsRenderPDF(t *testing.T) {
	f := newFixture()
	f.done.Description = "Deliver the public API with documentation and a client library."

	tests := []struct {
		name   string
		render func(*bytes.Buffer) error
	}{
		{"member", func(b *bytes.Buffer) error { return MemberReport(b, f.snap, f.ada, generatedAt) }},
		{"task", func(b *bytes.Buffer) error { return TaskReport(b, f.snap, f.done, generatedAt) }},
		{"team", func(b *bytes.Buffer) error { return TeamReport(b, f.snap, generatedAt) }},
		{"empty team", func(b *bytes.Buffer) error { return TeamReport(b, stats.Snapshot{}, generatedAt) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.render(&buf))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}
