//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"performance-tracker-backend/internal/database/models"
	"performance-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskRepositoryTestSuite tests the TaskRepository
type TaskRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TaskRepository
	memberRepo    *MemberRepository
	factories     *testutils.FactorySet
}

func (suite *TaskRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTaskRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TaskRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TaskRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TaskRepositoryTestSuite) createMember(name string) *models.Member {
	member := suite.factories.Member.WithName(name)
	suite.Require().NoError(suite.memberRepo.Create(member))
	return member
}

func (suite *TaskRepositoryTestSuite) TestCreateWithRelations() {
	a := suite.createMember("A")
	b := suite.createMember("B")
	task := suite.factories.Task.AssignedTo(b.ID, a.ID)
	task.Subtasks = []models.Subtask{{Title: "design"}, {Title: "build", Completed: true}}

	suite.Require().NoError(suite.repo.Create(task))

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{b.ID, a.ID}, retrieved.AssignedMemberIDs())
	suite.Len(retrieved.Subtasks, 2)
	suite.Equal(1, retrieved.CompletedSubtasks())
	suite.Equal(models.TaskStatusNotStarted, retrieved.Status)
}

func (suite *TaskRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TaskRepositoryTestSuite) TestSearch() {
	active := suite.factories.Task.WithTitle("Write API docs")
	active.Status = models.TaskStatusInProgress
	review := suite.factories.Task.WithTitle("Fix login bug")
	review.Status = models.TaskStatusReview
	done := suite.factories.Task.WithTitle("Ship API client")
	done.Status = models.TaskStatusCompleted
	for _, task := range []*models.Task{active, review, done} {
		suite.Require().NoError(suite.repo.Create(task))
	}

	open, err := suite.repo.Search(TaskFilter{})
	suite.NoError(err)
	suite.Len(open, 2)

	api, err := suite.repo.Search(TaskFilter{Query: "api"})
	suite.NoError(err)
	suite.Require().Len(api, 1)
	suite.Equal(active.ID, api[0].ID)

	inReview, err := suite.repo.Search(TaskFilter{Status: models.TaskStatusReview})
	suite.NoError(err)
	suite.Require().Len(inReview, 1)
	suite.Equal(review.ID, inReview[0].ID)

	archived, err := suite.repo.Search(TaskFilter{Archived: true, Query: "API"})
	suite.NoError(err)
	suite.Require().Len(archived, 1)
	suite.Equal(done.ID, archived[0].ID)
}

func (suite *TaskRepositoryTestSuite) TestGetByMemberID() {
	a := suite.createMember("A")
	b := suite.createMember("B")
	suite.Require().NoError(suite.repo.Create(suite.factories.Task.AssignedTo(a.ID)))
	suite.Require().NoError(suite.repo.Create(suite.factories.Task.AssignedTo(a.ID, b.ID)))

	tasks, err := suite.repo.GetByMemberID(a.ID)
	suite.NoError(err)
	suite.Len(tasks, 2)

	tasks, err = suite.repo.GetByMemberID(b.ID)
	suite.NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Len(tasks[0].Assignments, 2)
}

func (suite *TaskRepositoryTestSuite) TestListAllNewestFirst() {
	older := suite.factories.Task.WithTitle("older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.repo.Create(older))
	suite.Require().NoError(suite.repo.Create(suite.factories.Task.WithTitle("newer")))

	tasks, err := suite.repo.ListAll(context.Background())

	suite.NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal("newer", tasks[0].Title)
}

func (suite *TaskRepositoryTestSuite) TestSearchMatchesWildcardsLiterally() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Task.WithTitle("Cut p95 by 10%")))
	suite.Require().NoError(suite.repo.Create(suite.factories.Task.WithTitle("Cut p95 by 100ms")))

	tasks, err := suite.repo.Search(TaskFilter{Query: "10%"})

	suite.NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal("Cut p95 by 10%", tasks[0].Title)
}

func (suite *TaskRepositoryTestSuite) TestUpdateWithAssignments() {
	a := suite.createMember("A")
	b := suite.createMember("B")
	c := suite.createMember("C")
	task := suite.factories.Task.AssignedTo(a.ID, b.ID)
	suite.Require().NoError(suite.repo.Create(task))

	task.Title = "Renamed"
	ids := []uuid.UUID{c.ID, a.ID, c.ID}
	suite.NoError(suite.repo.UpdateWithAssignments(task, &ids))

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Title)
	suite.Equal([]uuid.UUID{c.ID, a.ID}, retrieved.AssignedMemberIDs())

	none := []uuid.UUID{}
	suite.NoError(suite.repo.UpdateWithAssignments(retrieved, &none))
	retrieved, err = suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Empty(retrieved.Assignments)
}

func (suite *TaskRepositoryTestSuite) TestUpdateWithoutAssignmentsKeepsRelations() {
	a := suite.createMember("A")
	task := suite.factories.Task.AssignedTo(a.ID)
	suite.Require().NoError(suite.repo.Create(task))

	task.Title = "Renamed"
	task.Assignments = nil
	suite.NoError(suite.repo.UpdateWithAssignments(task, nil))

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.Title)
	suite.Len(retrieved.Assignments, 1)
}

func (suite *TaskRepositoryTestSuite) TestUpdateWithAssignmentsRollsBackOnFailure() {
	a := suite.createMember("A")
	task := suite.factories.Task.AssignedTo(a.ID)
	suite.Require().NoError(suite.repo.Create(task))
	original := task.Title

	task.Title = "Renamed"
	task.Assignments = nil
	unknown := []uuid.UUID{uuid.New()}
	suite.Error(suite.repo.UpdateWithAssignments(task, &unknown))

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal(original, retrieved.Title)
	suite.Equal([]uuid.UUID{a.ID}, retrieved.AssignedMemberIDs())
}

func (suite *TaskRepositoryTestSuite) TestUpdateStatus() {
	task := suite.factories.Task.Create()
	suite.Require().NoError(suite.repo.Create(task))

	suite.NoError(suite.repo.UpdateStatus(task.ID, models.TaskStatusCompleted))

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Equal(models.TaskStatusCompleted, retrieved.Status)

	suite.ErrorIs(suite.repo.UpdateStatus(uuid.New(), models.TaskStatusReview), gorm.ErrRecordNotFound)
}

func (suite *TaskRepositoryTestSuite) TestSubtasks() {
	task := suite.factories.Task.Create()
	suite.Require().NoError(suite.repo.Create(task))

	subtask := &models.Subtask{TaskID: task.ID, Title: "write tests"}
	suite.NoError(suite.repo.AddSubtask(subtask))

	retrieved, err := suite.repo.GetSubtask(task.ID, subtask.ID)
	suite.NoError(err)
	suite.False(retrieved.Completed)

	suite.NoError(suite.repo.SetSubtaskCompleted(subtask.ID, true))
	retrieved, err = suite.repo.GetSubtask(task.ID, subtask.ID)
	suite.NoError(err)
	suite.True(retrieved.Completed)

	_, err = suite.repo.GetSubtask(uuid.New(), subtask.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TaskRepositoryTestSuite) TestAddAttachment() {
	task := suite.factories.Task.Create()
	suite.Require().NoError(suite.repo.Create(task))

	attachment := &models.TaskAttachment{
		TaskID:     task.ID,
		Name:       "notes.txt",
		Type:       "text/plain",
		Base64Data: "aGVsbG8=",
		UploadedAt: time.Now(),
	}
	suite.NoError(suite.repo.AddAttachment(attachment))

	retrieved, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.Require().Len(retrieved.Attachments, 1)
	suite.Equal("notes.txt", retrieved.Attachments[0].Name)
}

func (suite *TaskRepositoryTestSuite) TestDeleteCascades() {
	a := suite.createMember("A")
	task := suite.factories.Task.AssignedTo(a.ID)
	task.Subtasks = []models.Subtask{{Title: "one"}}
	suite.Require().NoError(suite.repo.Create(task))
	suite.Require().NoError(NewRatingRepository(suite.baseTestSuite.DB).Create(suite.factories.Rating.Create(task.ID, a.ID)))

	suite.NoError(suite.repo.Delete(task.ID))

	for _, table := range []string{"task_assignments", "subtasks", "ratings"} {
		var count int64
		suite.baseTestSuite.DB.Table(table).Where("task_id = ?", task.ID).Count(&count)
		suite.Zero(count, table)
	}
	suite.ErrorIs(suite.repo.Delete(task.ID), gorm.ErrRecordNotFound)
}

func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
