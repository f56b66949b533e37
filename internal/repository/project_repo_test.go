package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

func TestProjectCreateWithoutWASHGetsDefaultRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	id, err := repo.Create(&model.Project{
		Title:       "Coastal Embankment Improvement",
		ProjectType: constants.ProjectTypeAdaptation,
	}, nil, ProjectRelations{})
	require.NoError(t, err)

	got, err := repo.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, got.WASHComponent)
	assert.False(t, got.WASHComponent.Present)
	assert.Zero(t, got.WASHComponent.WaterSupplyPercent)
	assert.Equal(t, id, got.WASHComponent.ProjectID)
}

func TestProjectCreateHydratesRelations(t *testing.T) {
	db := newTestDB(t)
	ids := seedLookups(t, db)
	repo := NewProjectRepository(db)

	id, err := repo.Create(&model.Project{
		Title:       "Urban Resilience",
		ProjectType: constants.ProjectTypeCrossCutting,
	}, &model.WASHComponent{
		Present:            true,
		WaterSupplyPercent: 70,
		SanitationPercent:  20,
		PublicAdminPercent: 10,
	}, ProjectRelations{
		AgencyIDs:        ids.agencies,
		LocationIDs:      ids.locations[:1],
		FundingSourceIDs: ids.fundingSources,
		FocalAreaIDs:     ids.focalAreas,
	})
	require.NoError(t, err)

	got, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Len(t, got.Agencies, 2)
	assert.Len(t, got.Locations, 1)
	assert.Len(t, got.FundingSources, 1)
	assert.Len(t, got.FocalAreas, 1)
	require.NotNil(t, got.WASHComponent)
	assert.True(t, got.WASHComponent.Present)
	assert.Equal(t, 70.0, got.WASHComponent.WaterSupplyPercent)
}

func TestProjectCreateRollsBackOnUnknownRelation(t *testing.T) {
	db := newTestDB(t)
	seedLookups(t, db)
	repo := NewProjectRepository(db)

	_, err := repo.Create(&model.Project{
		Title:       "Ghost Agency Project",
		ProjectType: constants.ProjectTypeMitigation,
	}, nil, ProjectRelations{AgencyIDs: []int64{999}})
	require.Error(t, err)

	// nothing from the failed transaction may survive
	assert.Zero(t, count(t, db, &model.Project{}))
	assert.Zero(t, count(t, db, &model.WASHComponent{}))
	assert.Zero(t, count(t, db, &model.ProjectAgency{}))
}

func TestProjectUpdatePatchesOnlySuppliedColumns(t *testing.T) {
	db := newTestDB(t)
	ids := seedLookups(t, db)
	repo := NewProjectRepository(db)

	id, err := repo.Create(&model.Project{
		Title:       "Solar Irrigation",
		ProjectType: constants.ProjectTypeMitigation,
		TotalCost:   12.5,
		Status:      constants.ProjectStatusPlanning,
	}, nil, ProjectRelations{AgencyIDs: ids.agencies[:1]})
	require.NoError(t, err)

	newStatus := constants.ProjectStatusActive
	got, err := repo.Update(id, &ProjectPatch{Status: &newStatus})
	require.NoError(t, err)

	assert.Equal(t, constants.ProjectStatusActive, got.Status)
	assert.Equal(t, "Solar Irrigation", got.Title)
	assert.Equal(t, 12.5, got.TotalCost)
	// untouched relation list survives
	assert.Len(t, got.Agencies, 1)
}

func TestProjectUpdateReplacesRelationSet(t *testing.T) {
	db := newTestDB(t)
	ids := seedLookups(t, db)
	repo := NewProjectRepository(db)

	id, err := repo.Create(&model.Project{
		Title:       "Mangrove Restoration",
		ProjectType: constants.ProjectTypeAdaptation,
	}, nil, ProjectRelations{AgencyIDs: ids.agencies[:1], LocationIDs: ids.locations})
	require.NoError(t, err)

	replacement := []int64{ids.agencies[1]}
	got, err := repo.Update(id, &ProjectPatch{AgencyIDs: &replacement})
	require.NoError(t, err)

	require.Len(t, got.Agencies, 1)
	assert.Equal(t, ids.agencies[1], got.Agencies[0].ID)
	// other junction sets untouched
	assert.Len(t, got.Locations, 2)

	empty := []int64{}
	got, err = repo.Update(id, &ProjectPatch{LocationIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, got.Locations)
}

func TestProjectUpdateUpsertsWASH(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	id, err := repo.Create(&model.Project{
		Title:       "Rural Water Supply",
		ProjectType: constants.ProjectTypeAdaptation,
	}, nil, ProjectRelations{})
	require.NoError(t, err)

	got, err := repo.Update(id, &ProjectPatch{
		WASH: &model.WASHComponent{
			Present:            true,
			WaterSupplyPercent: 50,
			SanitationPercent:  30,
			PublicAdminPercent: 20,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, got.WASHComponent)
	assert.True(t, got.WASHComponent.Present)
	assert.Equal(t, 50.0, got.WASHComponent.WaterSupplyPercent)

	// still exactly one row per project
	assert.Equal(t, int64(1), count(t, db, &model.WASHComponent{}))
}

func TestProjectUpdateNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	title := "does not matter"
	_, err := repo.Update(42, &ProjectPatch{Title: &title})
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestProjectDeleteRemovesDependents(t *testing.T) {
	db := newTestDB(t)
	ids := seedLookups(t, db)
	repo := NewProjectRepository(db)

	id, err := repo.Create(&model.Project{
		Title:       "Cyclone Shelter Construction",
		ProjectType: constants.ProjectTypeAdaptation,
	}, nil, ProjectRelations{AgencyIDs: ids.agencies, FocalAreaIDs: ids.focalAreas})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))

	_, err = repo.FindByID(id)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
	assert.Zero(t, count(t, db, &model.WASHComponent{}))
	assert.Zero(t, count(t, db, &model.ProjectAgency{}))
	assert.Zero(t, count(t, db, &model.ProjectFocalArea{}))
	// lookup entities themselves survive
	assert.Equal(t, int64(2), count(t, db, &model.Agency{}))
}

func TestProjectListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	seed := []model.Project{
		{Title: "Flood Early Warning", ProjectType: constants.ProjectTypeAdaptation, Status: constants.ProjectStatusActive, ApprovalFiscalYear: "2023-24"},
		{Title: "Rooftop Solar", ProjectType: constants.ProjectTypeMitigation, Status: constants.ProjectStatusActive, ApprovalFiscalYear: "2024-25"},
		{Title: "Saline Tolerant Crops", ProjectType: constants.ProjectTypeAdaptation, Status: constants.ProjectStatusPlanning, ApprovalFiscalYear: "2024-25"},
	}
	for i := range seed {
		_, err := repo.Create(&seed[i], nil, ProjectRelations{})
		require.NoError(t, err)
	}

	items, total, err := repo.List(&dto.ProjectListQuery{ProjectType: constants.ProjectTypeAdaptation})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(&dto.ProjectListQuery{FiscalYear: "2024-25", Status: constants.ProjectStatusActive})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Rooftop Solar", items[0].Title)

	items, total, err = repo.List(&dto.ProjectListQuery{PageQuery: dto.PageQuery{Keyword: "Solar"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// list rows carry the WASH sub-record for flattening
	items, _, err = repo.List(&dto.ProjectListQuery{})
	require.NoError(t, err)
	for _, p := range items {
		assert.NotNil(t, p.WASHComponent)
	}
}
