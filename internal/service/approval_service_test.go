package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/internal/repository"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

type approvalFixture struct {
	submission SubmissionService
	approval   ApprovalService
	projects   ProjectService
}

func newApprovalFixture(t *testing.T) (*approvalFixture, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	projectRepo := repository.NewProjectRepository(db)
	pendingRepo := repository.NewPendingProjectRepository(db)

	return &approvalFixture{
		submission: NewSubmissionService(pendingRepo, testLogger()),
		approval:   NewApprovalService(db, projectRepo, pendingRepo, testLogger()),
		projects:   NewProjectService(projectRepo, testLogger()),
	}, db
}

func submitFixture(t *testing.T, f *approvalFixture, agencyIDs []int64, wash *dto.WASHComponentPayload) int64 {
	t.Helper()
	resp, err := f.submission.Submit(&dto.SubmitProjectRequest{
		Title:          "Drought Resilient Agriculture",
		ProjectType:    constants.ProjectTypeAdaptation,
		Sector:         "Agriculture",
		TotalCost:      42.0,
		AgencyIDs:      agencyIDs,
		WASHComponent:  wash,
		SubmitterEmail: "field.office@example.org",
	})
	require.NoError(t, err)
	return resp.PendingID
}

func TestApproveMaterializesSubmission(t *testing.T) {
	f, db := newApprovalFixture(t)
	agencyIDs := seedAgencies(t, db, "Department of Agriculture", "Local Government Division", "Water Board")

	pendingID := submitFixture(t, f, []int64{agencyIDs[0], agencyIDs[2]}, &dto.WASHComponentPayload{
		Present:            true,
		WaterSupplyPercent: 70,
		SanitationPercent:  20,
		PublicAdminPercent: 10,
	})

	project, err := f.approval.Approve(pendingID)
	require.NoError(t, err)

	assert.Equal(t, "Drought Resilient Agriculture", project.Title)
	assert.ElementsMatch(t, []int64{agencyIDs[0], agencyIDs[2]}, project.AgencyIDs)
	require.NotNil(t, project.WASHComponent)
	assert.True(t, project.WASHComponent.Present)
	assert.Equal(t, 70.0, project.WASHComponent.WaterSupplyPercent)
	assert.Equal(t, 20.0, project.WASHComponent.SanitationPercent)
	assert.Equal(t, 10.0, project.WASHComponent.PublicAdminPercent)

	// the submission is consumed
	_, err = f.submission.GetByID(pendingID)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)

	// and the project is readable through the registry
	got, err := f.projects.GetByID(project.ID)
	require.NoError(t, err)
	assert.Len(t, got.Agencies, 2)
}

func TestApproveWithoutWASHCreatesDefaultRow(t *testing.T) {
	f, _ := newApprovalFixture(t)

	pendingID := submitFixture(t, f, nil, nil)

	project, err := f.approval.Approve(pendingID)
	require.NoError(t, err)

	require.NotNil(t, project.WASHComponent)
	assert.False(t, project.WASHComponent.Present)
	assert.Zero(t, project.WASHComponent.WaterSupplyPercent)
}

func TestApproveTwiceReturnsNotFound(t *testing.T) {
	f, _ := newApprovalFixture(t)

	pendingID := submitFixture(t, f, nil, nil)

	_, err := f.approval.Approve(pendingID)
	require.NoError(t, err)

	_, err = f.approval.Approve(pendingID)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestApproveUnknownRelationKeepsSubmissionPending(t *testing.T) {
	f, db := newApprovalFixture(t)
	seedAgencies(t, db, "Only Agency")

	pendingID := submitFixture(t, f, []int64{999}, nil)

	_, err := f.approval.Approve(pendingID)
	require.Error(t, err)

	// the failed approval must leave no registry rows behind
	var projects int64
	require.NoError(t, db.Model(&model.Project{}).Count(&projects).Error)
	assert.Zero(t, projects)
	var washes int64
	require.NoError(t, db.Model(&model.WASHComponent{}).Count(&washes).Error)
	assert.Zero(t, washes)

	// the submission survives for correction and retry
	pending, err := f.submission.GetByID(pendingID)
	require.NoError(t, err)
	assert.Equal(t, "Drought Resilient Agriculture", pending.Title)
}

func TestRejectRemovesSubmissionWithoutRegistryWrite(t *testing.T) {
	f, db := newApprovalFixture(t)

	pendingID := submitFixture(t, f, nil, nil)

	require.NoError(t, f.approval.Reject(pendingID))

	_, err := f.submission.GetByID(pendingID)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)

	var projects int64
	require.NoError(t, db.Model(&model.Project{}).Count(&projects).Error)
	assert.Zero(t, projects)

	// rejection is final
	err = f.approval.Reject(pendingID)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestSubmitStoresRelationIDsUnchecked(t *testing.T) {
	f, _ := newApprovalFixture(t)

	// ids that do not exist yet are accepted at submission time
	pendingID := submitFixture(t, f, []int64{5, 7}, nil)

	pending, err := f.submission.GetByID(pendingID)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7}, pending.AgencyIDs)
}
