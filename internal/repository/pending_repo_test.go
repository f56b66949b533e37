package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-registry/internal/model"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

func stagePending(t *testing.T, repo PendingProjectRepository, title string) int64 {
	t.Helper()
	id, err := repo.Create(&model.PendingProject{
		Title:          title,
		ProjectType:    constants.ProjectTypeAdaptation,
		SubmitterEmail: "someone@example.org",
	})
	require.NoError(t, err)
	return id
}

func TestPendingCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendingProjectRepository(db)

	id := stagePending(t, repo, "Community Pond Excavation")

	got, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Community Pond Excavation", got.Title)
	assert.Equal(t, "someone@example.org", got.SubmitterEmail)
	assert.False(t, got.SubmittedAt.IsZero())

	_, err = repo.FindByID(id + 100)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
}

func TestPendingListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendingProjectRepository(db)

	older := stagePending(t, repo, "older")
	newer := stagePending(t, repo, "newer")

	// pin distinct timestamps so the ordering is deterministic
	base := time.Now()
	require.NoError(t, db.Model(&model.PendingProject{}).Where("id = ?", older).
		Update("submitted_at", base.Add(-time.Hour)).Error)
	require.NoError(t, db.Model(&model.PendingProject{}).Where("id = ?", newer).
		Update("submitted_at", base).Error)

	pendings, err := repo.List()
	require.NoError(t, err)
	require.Len(t, pendings, 2)
	assert.Equal(t, "newer", pendings[0].Title)
	assert.Equal(t, "older", pendings[1].Title)
}

func TestPendingDeleteReportsRowsAffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendingProjectRepository(db)

	id := stagePending(t, repo, "to be removed")

	n, err := repo.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPendingPurgeOlderThan(t *testing.T) {
	db := newTestDB(t)
	repo := NewPendingProjectRepository(db)

	stale := stagePending(t, repo, "stale")
	fresh := stagePending(t, repo, "fresh")

	cutoff := time.Now().AddDate(0, 0, -30)
	require.NoError(t, db.Model(&model.PendingProject{}).Where("id = ?", stale).
		Update("submitted_at", cutoff.AddDate(0, 0, -1)).Error)

	n, err := repo.CountOlderThan(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	deleted, err := repo.DeleteOlderThan(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(stale)
	assert.ErrorIs(t, err, pkgErrors.ErrRecordNotFound)
	_, err = repo.FindByID(fresh)
	assert.NoError(t, err)
}
