package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"climate-registry/internal/model"
	"climate-registry/internal/pkg/database"
)

// newTestDB opens an isolated in-memory database with the full schema.
// A single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

type lookupIDs struct {
	agencies       []int64
	locations      []int64
	fundingSources []int64
	focalAreas     []int64
}

func seedLookups(t *testing.T, db *gorm.DB) lookupIDs {
	t.Helper()

	var ids lookupIDs

	for _, name := range []string{"Department of Environment", "Water Development Board"} {
		agency := &model.Agency{Name: name}
		require.NoError(t, db.Create(agency).Error)
		ids.agencies = append(ids.agencies, agency.ID)
	}
	for _, name := range []string{"Khulna", "Barisal"} {
		location := &model.Location{Name: name}
		require.NoError(t, db.Create(location).Error)
		ids.locations = append(ids.locations, location.ID)
	}
	source := &model.FundingSource{Name: "Green Climate Fund"}
	require.NoError(t, db.Create(source).Error)
	ids.fundingSources = append(ids.fundingSources, source.ID)

	area := &model.FocalArea{Name: "Food Security"}
	require.NoError(t, db.Create(area).Error)
	ids.focalAreas = append(ids.focalAreas, area.ID)

	return ids
}

func count(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Count(&n).Error)
	return n
}
