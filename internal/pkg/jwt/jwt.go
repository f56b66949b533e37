package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"climate-registry/internal/pkg/config"
	"climate-registry/pkg/constants"
	pkgErrors "climate-registry/pkg/responses"
)

// UserClaims administrator claims
type UserClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Type     string `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// GenerateAccessToken issues an access token
func GenerateAccessToken(userID int64, username string, isAdmin bool) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT

	claims := UserClaims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		Type:     constants.JWTTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.AccessTokenExpire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// GenerateRefreshToken issues a refresh token
func GenerateRefreshToken(userID int64, username string, isAdmin bool) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT

	claims := UserClaims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		Type:     constants.JWTTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.RefreshTokenExpire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken parses and verifies a token
func ParseToken(tokenString string) (*UserClaims, error) {
	cfg := config.GlobalConfig.Auth.JWT

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthorized, "parse token failed", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// ValidateToken parses a token and checks expiry
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, pkgErrors.ErrTokenExpired
	}

	return claims, nil
}
