package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"climate-registry/internal/dto"
	"climate-registry/internal/pkg/jwt"
	"climate-registry/pkg/constants"
	"climate-registry/pkg/responses"
)

// AuthMiddleware validates the bearer token and stores the user in context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "malformed Authorization header")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		// refresh tokens cannot be used to call the API
		if claims.Type != constants.JWTTypeAccess {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		userInfo := &dto.UserInfo{
			ID:       claims.UserID,
			Username: claims.Username,
			IsAdmin:  claims.IsAdmin,
		}
		c.Set(constants.JWTContextKey, userInfo)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// AdminRequired allows only administrator accounts through
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(constants.JWTContextKey)
		if !exists {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "not authenticated")
			c.Abort()
			return
		}

		userInfo, ok := value.(*dto.UserInfo)
		if !ok || !userInfo.IsAdmin {
			responses.Error(c, responses.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}
