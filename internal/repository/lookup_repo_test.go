package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-registry/internal/model"
)

func TestAgencyListOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewAgencyRepository(db)

	for _, name := range []string{"Zila Parishad", "Agriculture Extension"} {
		require.NoError(t, repo.Create(&model.Agency{Name: name}))
	}

	agencies, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, agencies, 2)
	assert.Equal(t, "Agriculture Extension", agencies[0].Name)
}

func TestAgencyDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	repo := NewAgencyRepository(db)

	agency := &model.Agency{Name: "Forest Department"}
	require.NoError(t, repo.Create(agency))
	require.NoError(t, repo.Delete(agency.ID))

	agencies, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, agencies)

	// the row is retained under soft delete
	var n int64
	require.NoError(t, db.Unscoped().Model(&model.Agency{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
