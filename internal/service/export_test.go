package service_test

import (
	"bytes"
	"testing"

	apperrors "performance-tracker-backend/internal/errors"
	"performance-tracker-backend/internal/mocks"
	"performance-tracker-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newExportService(t *testing.T) (*service.ExportService, statsFixture) {
	f := newStatsFixture()
	ctrl := gomock.NewController(t)
	snapshots := mocks.NewMockSnapshotProvider(ctrl)
	snapshots.EXPECT().Snapshot().Return(f.snap).AnyTimes()
	return service.NewExportService(snapshots), f
}

func TestExportServiceMemberReport(t *testing.T) {
	svc, f := newExportService(t)

	var buf bytes.Buffer
	name, err := svc.MemberReport(&buf, f.alice.ID)

	require.NoError(t, err)
	assert.Equal(t, "Alice_Performance_Report.pdf", name)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportServiceTaskReport(t *testing.T) {
	svc, f := newExportService(t)

	var buf bytes.Buffer
	name, err := svc.TaskReport(&buf, f.open.ID)

	require.NoError(t, err)
	assert.Equal(t, "Open_Task_Report.pdf", name)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportServiceTeamReport(t *testing.T) {
	svc, _ := newExportService(t)

	var buf bytes.Buffer
	name, err := svc.TeamReport(&buf)

	require.NoError(t, err)
	assert.Regexp(t, `^Team_Performance_Report_\d{4}-\d{2}-\d{2}\.pdf$`, name)
	assert.NotZero(t, buf.Len())
}

func TestExportServiceUnknownEntities(t *testing.T) {
	svc, _ := newExportService(t)

	var buf bytes.Buffer
	_, err := svc.MemberReport(&buf, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)

	_, err = svc.TaskReport(&buf, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	assert.Zero(t, buf.Len())
}
