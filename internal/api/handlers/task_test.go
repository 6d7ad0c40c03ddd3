package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"performance-tracker-backend/internal/api/handlers"
	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/mocks"
	"performance-tracker-backend/internal/service"
	"performance-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTaskServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTaskServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewTaskHandler(suite.mockService)
	r := suite.http.Router
	r.POST("/tasks", handler.CreateTask)
	r.GET("/tasks", handler.ListTasks)
	r.GET("/tasks/archive", handler.ListArchivedTasks)
	r.GET("/tasks/:id", handler.GetTask)
	r.PUT("/tasks/:id", handler.UpdateTask)
	r.DELETE("/tasks/:id", handler.DeleteTask)
	r.PATCH("/tasks/:id/status", handler.UpdateTaskStatus)
	r.POST("/tasks/:id/subtasks", handler.AddSubtask)
	r.PATCH("/tasks/:id/subtasks/:subtaskId/toggle", handler.ToggleSubtask)
	r.POST("/tasks/:id/attachments", handler.AddAttachment)
	r.GET("/members/:id/tasks", handler.GetTasksByMember)
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TaskHandlerTestSuite) TestCreateTask() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	member := uuid.New()
	body := map[string]interface{}{
		"title":            "Ship it",
		"start_date":       start.Format(time.RFC3339),
		"end_date":         start.AddDate(0, 0, 5).Format(time.RFC3339),
		"assigned_members": []string{member.String()},
		"subtasks":         []string{"one"},
	}

	suite.mockService.EXPECT().
		CreateTask(gomock.Any()).
		DoAndReturn(func(req *service.CreateTaskRequest) (*service.TaskResponse, error) {
			suite.Equal("Ship it", req.Title)
			suite.True(req.StartDate.Equal(start))
			suite.Equal([]uuid.UUID{member}, req.AssignedMembers)
			return &service.TaskResponse{ID: uuid.New(), Title: req.Title, Status: "not-started"}, nil
		})

	rec := suite.http.MakeRequest(http.MethodPost, "/tasks", body)

	var response service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &response)
	suite.Equal("not-started", response.Status)
}

func (suite *TaskHandlerTestSuite) TestCreateTaskUnknownMember() {
	suite.mockService.EXPECT().CreateTask(gomock.Any()).Return(nil, apperrors.ErrAssignedMemberGone)

	rec := suite.http.MakeRequest(http.MethodPost, "/tasks", map[string]string{"title": "x"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "assigned member not found")
}

func (suite *TaskHandlerTestSuite) TestCreateTaskBadDate() {
	rec := suite.http.MakeRequest(http.MethodPost, "/tasks", map[string]string{"title": "x", "start_date": "yesterday"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "")
}

func (suite *TaskHandlerTestSuite) TestListTasks() {
	suite.mockService.EXPECT().ListTasks("api", "review").Return([]service.TaskResponse{{Title: "API"}}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/tasks?q=api&status=review", nil)

	var response []service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *TaskHandlerTestSuite) TestListTasksInvalidStatus() {
	suite.mockService.EXPECT().ListTasks("", "blocked").Return(nil, apperrors.ErrInvalidStatus)

	rec := suite.http.MakeRequest(http.MethodGet, "/tasks?status=blocked", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "status")
}

func (suite *TaskHandlerTestSuite) TestListArchivedTasks() {
	suite.mockService.EXPECT().ListArchivedTasks("docs").Return([]service.TaskResponse{}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/tasks/archive?q=docs", nil)

	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, nil)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *TaskHandlerTestSuite) TestGetTaskNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetTaskByID(id).Return(nil, apperrors.ErrTaskNotFound)

	rec := suite.http.MakeRequest(http.MethodGet, "/tasks/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "task not found")
}

func (suite *TaskHandlerTestSuite) TestGetTasksByMember() {
	id := uuid.New()
	suite.mockService.EXPECT().GetTasksByMember(id).Return([]service.TaskResponse{{}, {}}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/members/"+id.String()+"/tasks", nil)

	var response []service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UpdateTask(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdateTaskRequest) (*service.TaskResponse, error) {
			suite.Require().NotNil(req.AssignedMembers)
			suite.Empty(*req.AssignedMembers)
			suite.Nil(req.Title)
			return &service.TaskResponse{ID: id}, nil
		})

	rec := suite.http.MakeRawRequest(http.MethodPut, "/tasks/"+id.String(), `{"assigned_members":[]}`)

	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *TaskHandlerTestSuite) TestUpdateTaskStatus() {
	id := uuid.New()
	suite.mockService.EXPECT().UpdateTaskStatus(id, "completed").Return(&service.TaskResponse{ID: id, Status: "completed"}, nil)

	rec := suite.http.MakeRequest(http.MethodPatch, "/tasks/"+id.String()+"/status", service.UpdateTaskStatusRequest{Status: "completed"})

	var response service.TaskResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	suite.Equal("completed", response.Status)
}

func (suite *TaskHandlerTestSuite) TestDeleteTask() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteTask(id).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/tasks/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, rec.Code)
}

func (suite *TaskHandlerTestSuite) TestAddSubtask() {
	id := uuid.New()
	suite.mockService.EXPECT().
		AddSubtask(id, &service.AddSubtaskRequest{Title: "review"}).
		Return(&service.TaskResponse{ID: id}, nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/tasks/"+id.String()+"/subtasks", service.AddSubtaskRequest{Title: "review"})

	suite.Equal(http.StatusCreated, rec.Code)
}

func (suite *TaskHandlerTestSuite) TestToggleSubtask() {
	taskID, subtaskID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().ToggleSubtask(taskID, subtaskID).Return(&service.TaskResponse{ID: taskID}, nil)

	rec := suite.http.MakeRequest(http.MethodPatch, "/tasks/"+taskID.String()+"/subtasks/"+subtaskID.String()+"/toggle", nil)

	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *TaskHandlerTestSuite) TestToggleSubtaskInvalidID() {
	rec := suite.http.MakeRequest(http.MethodPatch, "/tasks/"+uuid.NewString()+"/subtasks/nope/toggle", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid subtask ID")
}

func (suite *TaskHandlerTestSuite) TestAddAttachmentInvalidPayload() {
	id := uuid.New()
	suite.mockService.EXPECT().AddAttachment(id, gomock.Any()).Return(nil, apperrors.ErrInvalidAttachment)

	rec := suite.http.MakeRequest(http.MethodPost, "/tasks/"+id.String()+"/attachments", service.AddAttachmentRequest{
		Name: "a.txt", Type: "text/plain", Base64Data: "%%%",
	})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "base64")
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
