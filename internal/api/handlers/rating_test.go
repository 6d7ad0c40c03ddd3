package handlers_test

import (
	"net/http"
	"testing"

	"performance-tracker-backend/internal/api/handlers"
	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/mocks"
	"performance-tracker-backend/internal/service"
	"performance-tracker-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RatingHandlerTestSuite defines the test suite for RatingHandler
type RatingHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRatingServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *RatingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRatingServiceInterface(suite.ctrl)
	suite.http = testutils.SetupHTTPTest()

	handler := handlers.NewRatingHandler(suite.mockService)
	r := suite.http.Router
	r.POST("/ratings", handler.CreateRating)
	r.DELETE("/ratings/:id", handler.DeleteRating)
	r.GET("/tasks/:id/ratings", handler.GetRatingsByTask)
	r.GET("/tasks/:id/ratings/:memberId", handler.GetRatingsByTaskAndMember)
	r.GET("/members/:id/ratings", handler.GetRatingsByMember)
}

func (suite *RatingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RatingHandlerTestSuite) TestCreateRating() {
	taskID, memberID := uuid.New(), uuid.New()
	req := service.CreateRatingRequest{
		TaskID:     taskID,
		MemberID:   memberID,
		Dimensions: service.RatingDimensionsRequest{Quality: 5, Timeliness: 5, Communication: 4, Initiative: 4},
		Mode:       "final",
	}
	suite.mockService.EXPECT().
		CreateRating(&req).
		Return(&service.RatingResponse{ID: uuid.New(), TaskID: taskID, MemberID: memberID, AverageRating: 4.5, Mode: "final"}, nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/ratings", req)

	var response service.RatingResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &response)
	suite.Equal(4.5, response.AverageRating)
}

func (suite *RatingHandlerTestSuite) TestCreateRatingErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid mode", apperrors.ErrInvalidRatingMode, http.StatusBadRequest},
		{"score out of range", apperrors.NewValidationError("Quality", "failed on the 'max' rule"), http.StatusBadRequest},
		{"unknown task", apperrors.ErrTaskNotFound, http.StatusNotFound},
		{"unknown member", apperrors.ErrMemberNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockService.EXPECT().CreateRating(gomock.Any()).Return(nil, tt.err)

			rec := suite.http.MakeRequest(http.MethodPost, "/ratings", service.CreateRatingRequest{})

			testutils.AssertErrorResponse(suite.T(), rec, tt.status, tt.err.Error())
		})
	}
}

func (suite *RatingHandlerTestSuite) TestGetRatingsByTask() {
	id := uuid.New()
	suite.mockService.EXPECT().GetRatingsByTask(id).Return([]service.RatingResponse{{TaskID: id}}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/tasks/"+id.String()+"/ratings", nil)

	var response []service.RatingResponse
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &response)
	suite.Len(response, 1)
}

func (suite *RatingHandlerTestSuite) TestGetRatingsByTaskAndMember() {
	taskID, memberID := uuid.New(), uuid.New()
	suite.mockService.EXPECT().GetRatingsByTaskAndMember(taskID, memberID).Return([]service.RatingResponse{}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/tasks/"+taskID.String()+"/ratings/"+memberID.String(), nil)

	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, nil)
}

func (suite *RatingHandlerTestSuite) TestGetRatingsByMemberInvalidID() {
	rec := suite.http.MakeRequest(http.MethodGet, "/members/123/ratings", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "Invalid member ID")
}

func (suite *RatingHandlerTestSuite) TestDeleteRating() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteRating(id).Return(apperrors.ErrRatingNotFound)

	rec := suite.http.MakeRequest(http.MethodDelete, "/ratings/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "rating not found")
}

func TestRatingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RatingHandlerTestSuite))
}
