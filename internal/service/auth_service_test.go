package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"climate-registry/internal/dto"
	"climate-registry/internal/model"
	"climate-registry/internal/pkg/config"
	"climate-registry/internal/pkg/crypto"
	"climate-registry/internal/repository"
	pkgErrors "climate-registry/pkg/responses"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()

	config.GlobalConfig = &config.Config{
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{
				Secret:             "test-secret",
				AccessTokenExpire:  3600,
				RefreshTokenExpire: 7200,
			},
		},
	}

	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)

	hash, err := crypto.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(&model.User{
		Username: "admin",
		Password: hash,
		IsAdmin:  true,
	}))

	return NewAuthService(userRepo, testLogger())
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin", resp.User.Username)
	assert.True(t, resp.User.IsAdmin)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)
}

func TestLoginUnknownUserLooksLikeBadPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Login(&dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newAuthService(t)

	login, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// an access token is not accepted as a refresh token
	_, err = svc.RefreshToken(login.AccessToken)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}
