package service

import (
	"time"

	"go.uber.org/zap"

	"climate-registry/internal/dto"
	"climate-registry/internal/pkg/crypto"
	"climate-registry/internal/pkg/jwt"
	"climate-registry/internal/repository"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, logger *zap.Logger) AuthService {
	return &authService{userRepo: userRepo, logger: logger}
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		// Indistinguishable from a bad password on purpose
		return nil, pkgErrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(req.Password, user.Password) {
		return nil, pkgErrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		s.logger.Warn("update last login failed", zap.Error(err))
	}

	return s.issueTokens(user.ID, user.Username, user.IsAdmin, &dto.UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
	})
}

func (s *authService) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	claims, err := jwt.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != constants.JWTTypeRefresh {
		return nil, pkgErrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user.ID, user.Username, user.IsAdmin, &dto.UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
	})
}

func (s *authService) issueTokens(userID int64, username string, isAdmin bool, info *dto.UserInfo) (*dto.LoginResponse, error) {
	accessToken, err := jwt.GenerateAccessToken(userID, username, isAdmin)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "generate access token failed", err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(userID, username, isAdmin)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "generate refresh token failed", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         info,
	}, nil
}
