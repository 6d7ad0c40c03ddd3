package testutils

import (
	"time"

	"performance-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet builds unsaved tracker records with fresh ids and plausible defaults
type FactorySet struct {
	Member MemberFactory
	Task   TaskFactory
	Rating RatingFactory
}

func NewFactorySet() *FactorySet {
	return &FactorySet{}
}

// newBase stamps a record the way the database would
func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

type MemberFactory struct{}

func (MemberFactory) Create() *models.Member {
	return &models.Member{
		BaseModel: newBase(),
		Name:      "Jane Doe",
		Role:      "Backend Engineer",
		Contact:   "jane.doe@test.com",
	}
}

func (f MemberFactory) WithName(name string) *models.Member {
	m := f.Create()
	m.Name = name
	return m
}

func (f MemberFactory) WithRole(role string) *models.Member {
	m := f.Create()
	m.Role = role
	return m
}

type TaskFactory struct{}

// Create returns an unassigned, not started task spanning one week from now
func (TaskFactory) Create() *models.Task {
	start := time.Now().UTC().Truncate(time.Second)
	return &models.Task{
		BaseModel:   newBase(),
		Title:       "Implement login page",
		Description: "Build the login page with validation",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Status:      models.TaskStatusNotStarted,
	}
}

func (f TaskFactory) WithTitle(title string) *models.Task {
	t := f.Create()
	t.Title = title
	return t
}

// AssignedTo keeps memberIDs in the given order
func (f TaskFactory) AssignedTo(memberIDs ...uuid.UUID) *models.Task {
	t := f.Create()
	for i, id := range memberIDs {
		t.Assignments = append(t.Assignments, models.TaskAssignment{TaskID: t.ID, MemberID: id, Position: i})
	}
	return t
}

type RatingFactory struct{}

// Create returns a daily rating of 4 on every dimension
func (f RatingFactory) Create(taskID, memberID uuid.UUID) *models.Rating {
	return f.WithScores(taskID, memberID, 4, 4, 4, 4)
}

func (RatingFactory) WithScores(taskID, memberID uuid.UUID, quality, timeliness, communication, initiative int) *models.Rating {
	return &models.Rating{
		BaseModel: newBase(),
		TaskID:    taskID,
		MemberID:  memberID,
		Dimensions: models.RatingDimensions{
			Quality:       quality,
			Timeliness:    timeliness,
			Communication: communication,
			Initiative:    initiative,
		},
		Comments:  "Solid work",
		Mode:      models.RatingModeDaily,
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
}
