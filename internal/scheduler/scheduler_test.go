package scheduler

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"climate-registry/internal/model"
	"climate-registry/internal/pkg/config"
	"climate-registry/internal/pkg/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func TestPurgeStalePending(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{Registry: config.RegistryConfig{PendingRetentionDays: 30}}
	s := NewScheduler(db, zap.NewNop(), cfg)

	stale := &model.PendingProject{Title: "stale", ProjectType: "adaptation", SubmitterEmail: "a@example.org"}
	fresh := &model.PendingProject{Title: "fresh", ProjectType: "mitigation", SubmitterEmail: "b@example.org"}
	require.NoError(t, db.Create(stale).Error)
	require.NoError(t, db.Create(fresh).Error)

	require.NoError(t, db.Model(&model.PendingProject{}).Where("id = ?", stale.ID).
		Update("submitted_at", time.Now().AddDate(0, 0, -31)).Error)

	require.NoError(t, s.PurgeStalePending())

	var titles []string
	require.NoError(t, db.Model(&model.PendingProject{}).Pluck("title", &titles).Error)
	assert.Equal(t, []string{"fresh"}, titles)
}

func TestPurgeDisabledByZeroRetention(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{Registry: config.RegistryConfig{PendingRetentionDays: 0}}
	s := NewScheduler(db, zap.NewNop(), cfg)

	old := &model.PendingProject{Title: "ancient", ProjectType: "adaptation", SubmitterEmail: "c@example.org"}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Model(&model.PendingProject{}).Where("id = ?", old.ID).
		Update("submitted_at", time.Now().AddDate(-1, 0, 0)).Error)

	require.NoError(t, s.PurgeStalePending())

	var n int64
	require.NoError(t, db.Model(&model.PendingProject{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
