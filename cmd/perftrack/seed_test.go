package main

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"performance-tracker-backend/internal/mocks"
	"performance-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func loadTestSeed(t *testing.T) *seedFile {
	t.Helper()
	f, err := os.Open("testdata/seed.yaml")
	require.NoError(t, err)
	defer f.Close()

	seed, err := parseSeed(f)
	require.NoError(t, err)
	return seed
}

func TestParseSeed(t *testing.T) {
	seed := loadTestSeed(t)

	require.Len(t, seed.Members, 2)
	require.Len(t, seed.Tasks, 2)
	require.Len(t, seed.Ratings, 2)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), seed.Tasks[0].StartDate)
	assert.Equal(t, []string{"alice", "bob"}, seed.Tasks[0].Assigned)
	assert.True(t, seed.Tasks[0].Subtasks[0].Completed)
	assert.Equal(t, time.Date(2024, 3, 5, 17, 0, 0, 0, time.UTC), seed.Ratings[0].Timestamp)
	assert.True(t, seed.Ratings[1].Timestamp.IsZero())
}

func TestParseSeedRejectsUnknownFields(t *testing.T) {
	_, err := parseSeed(strings.NewReader("members:\n  - nmae: typo\n"))
	assert.ErrorContains(t, err, "parse seed")
}

func TestApplySeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberServiceInterface(ctrl)
	tasks := mocks.NewMockTaskServiceInterface(ctrl)
	ratings := mocks.NewMockRatingServiceInterface(ctrl)

	alice, bob := uuid.New(), uuid.New()
	apiTask, docsTask := uuid.New(), uuid.New()
	schema := uuid.New()

	gomock.InOrder(
		members.EXPECT().CreateMember(&service.CreateMemberRequest{Name: "Alice Johnson", Role: "Backend Engineer", Contact: "alice@example.com"}).
			Return(&service.MemberResponse{ID: alice}, nil),
		members.EXPECT().CreateMember(gomock.Any()).Return(&service.MemberResponse{ID: bob}, nil),
	)

	tasks.EXPECT().
		CreateTask(gomock.Any()).
		DoAndReturn(func(req *service.CreateTaskRequest) (*service.TaskResponse, error) {
			if req.Title == "Build ratings API" {
				assert.Equal(t, []uuid.UUID{alice, bob}, req.AssignedMembers)
				assert.Equal(t, []string{"Schema", "Handlers"}, req.Subtasks)
				return &service.TaskResponse{ID: apiTask, Subtasks: []service.SubtaskResponse{{ID: schema}, {ID: uuid.New()}}}, nil
			}
			assert.Equal(t, "completed", req.Status)
			return &service.TaskResponse{ID: docsTask}, nil
		}).
		Times(2)
	tasks.EXPECT().ToggleSubtask(apiTask, schema).Return(&service.TaskResponse{}, nil)

	ratings.EXPECT().
		CreateRating(gomock.Any()).
		DoAndReturn(func(req *service.CreateRatingRequest) (*service.RatingResponse, error) {
			if req.TaskID == apiTask {
				assert.Equal(t, alice, req.MemberID)
				require.NotNil(t, req.Timestamp)
			} else {
				assert.Equal(t, docsTask, req.TaskID)
				assert.Nil(t, req.Timestamp)
				assert.Equal(t, "final", req.Mode)
			}
			return &service.RatingResponse{}, nil
		}).
		Times(2)

	result, err := applySeed(loadTestSeed(t), members, tasks, ratings)

	require.NoError(t, err)
	assert.Equal(t, seedResult{Members: 2, Tasks: 2, Ratings: 2}, result)
}

func TestApplySeedUnknownMemberKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberServiceInterface(ctrl)
	tasks := mocks.NewMockTaskServiceInterface(ctrl)
	ratings := mocks.NewMockRatingServiceInterface(ctrl)

	seed := &seedFile{Tasks: []seedTask{{Key: "t", Title: "T", Assigned: []string{"ghost"}}}}

	result, err := applySeed(seed, members, tasks, ratings)

	assert.ErrorContains(t, err, `unknown member "ghost"`)
	assert.Zero(t, result.Tasks)
}

func TestApplySeedStopsOnServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberServiceInterface(ctrl)
	tasks := mocks.NewMockTaskServiceInterface(ctrl)
	ratings := mocks.NewMockRatingServiceInterface(ctrl)

	members.EXPECT().CreateMember(gomock.Any()).Return(nil, errors.New("validation error: Name - failed on the 'required' rule"))

	seed := &seedFile{Members: []seedMember{{Key: "x"}, {Key: "y", Name: "Y", Role: "R"}}}
	_, err := applySeed(seed, members, tasks, ratings)

	assert.ErrorContains(t, err, `member "x"`)
}
