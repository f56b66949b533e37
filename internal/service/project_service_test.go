package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-registry/internal/dto"
	"climate-registry/internal/repository"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

func newProjectService(t *testing.T) ProjectService {
	t.Helper()
	db := newTestDB(t)
	return NewProjectService(repository.NewProjectRepository(db), testLogger())
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	svc := newProjectService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -3, 0)

	_, err := svc.Create(&dto.CreateProjectRequest{
		Title:       "Backwards Timeline",
		ProjectType: constants.ProjectTypeAdaptation,
		StartDate:   &start,
		EndDate:     &end,
	})
	require.Error(t, err)

	var appErr *pkgErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgErrors.CodeBadRequest, appErr.Code)
}

func TestCreateReturnsCompositeView(t *testing.T) {
	svc := newProjectService(t)

	resp, err := svc.Create(&dto.CreateProjectRequest{
		Title:       "Renewable Energy Pilot",
		ProjectType: constants.ProjectTypeMitigation,
		TotalCost:   5.75,
		WASHComponent: &dto.WASHComponentPayload{
			Present:            true,
			WaterSupplyPercent: 40,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mitigation", resp.ProjectTypeLabel)
	assert.Equal(t, 5.75, resp.TotalCost)
	require.NotNil(t, resp.WASHComponent)
	assert.True(t, resp.WASHComponent.Present)
	assert.NotEmpty(t, resp.CreatedAt)
	assert.Empty(t, resp.Agencies)
}

func TestUpdateValidatesEffectiveDates(t *testing.T) {
	svc := newProjectService(t)

	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(2, 0, 0)
	created, err := svc.Create(&dto.CreateProjectRequest{
		Title:       "Two Year Programme",
		ProjectType: constants.ProjectTypeAdaptation,
		StartDate:   &start,
		EndDate:     &end,
	})
	require.NoError(t, err)

	// patching only the end below the stored start must fail
	badEnd := start.AddDate(0, -1, 0)
	_, err = svc.Update(created.ID, &dto.UpdateProjectRequest{EndDate: &badEnd})
	require.Error(t, err)

	var appErr *pkgErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgErrors.CodeBadRequest, appErr.Code)

	// a consistent pair is accepted
	newStart := start.AddDate(0, 1, 0)
	updated, err := svc.Update(created.ID, &dto.UpdateProjectRequest{StartDate: &newStart})
	require.NoError(t, err)
	require.NotNil(t, updated.StartDate)
	assert.True(t, updated.StartDate.Equal(newStart))
}

func TestUpdateLeavesOmittedFieldsAlone(t *testing.T) {
	svc := newProjectService(t)

	created, err := svc.Create(&dto.CreateProjectRequest{
		Title:       "Original Title",
		ProjectType: constants.ProjectTypeCrossCutting,
		Sector:      "Water",
		TotalCost:   9.9,
	})
	require.NoError(t, err)

	newTitle := "Amended Title"
	updated, err := svc.Update(created.ID, &dto.UpdateProjectRequest{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Amended Title", updated.Title)
	assert.Equal(t, "Water", updated.Sector)
	assert.Equal(t, 9.9, updated.TotalCost)
	assert.Equal(t, constants.ProjectTypeCrossCutting, updated.ProjectType)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newProjectService(t)

	title := "nobody home"
	_, err := svc.Update(77, &dto.UpdateProjectRequest{Title: &title})
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc := newProjectService(t)
	assert.ErrorIs(t, svc.Delete(123), pkgErrors.ErrRecordNotFound)
}

func TestListFlattensWASH(t *testing.T) {
	svc := newProjectService(t)

	_, err := svc.Create(&dto.CreateProjectRequest{
		Title:       "Sanitation Upgrade",
		ProjectType: constants.ProjectTypeAdaptation,
		WASHComponent: &dto.WASHComponentPayload{
			Present:           true,
			SanitationPercent: 85,
		},
	})
	require.NoError(t, err)

	items, total, err := svc.List(&dto.ProjectListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.True(t, items[0].WASHPresent)
	assert.Equal(t, 85.0, items[0].SanitationPercent)
}
