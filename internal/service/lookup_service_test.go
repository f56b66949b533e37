package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-registry/internal/dto"
	"climate-registry/internal/repository"
	pkgErrors "climate-registry/pkg/responses"
)

func newLookupService(t *testing.T) (LookupService, []int64) {
	t.Helper()
	db := newTestDB(t)
	ids := seedAgencies(t, db, "Ministry of Environment", "National Water Authority")
	svc := NewLookupService(
		repository.NewAgencyRepository(db),
		repository.NewLocationRepository(db),
		repository.NewFundingSourceRepository(db),
		repository.NewFocalAreaRepository(db),
	)
	return svc, ids
}

func TestUpdateAgencyPatchesSuppliedFields(t *testing.T) {
	svc, ids := newLookupService(t)

	acronym := "NWA"
	updated, err := svc.UpdateAgency(ids[1], &dto.UpdateAgencyRequest{Acronym: &acronym})
	require.NoError(t, err)

	assert.Equal(t, "National Water Authority", updated.Name)
	require.NotNil(t, updated.Acronym)
	assert.Equal(t, "NWA", *updated.Acronym)
}

func TestUpdateAgencyNotFound(t *testing.T) {
	svc, _ := newLookupService(t)

	name := "Ghost Agency"
	_, err := svc.UpdateAgency(9999, &dto.UpdateAgencyRequest{Name: &name})
	require.Error(t, err)

	var appErr *pkgErrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkgErrors.CodeNotFound, appErr.Code)
}
