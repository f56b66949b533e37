package handler

import (
	"github.com/gin-gonic/gin"

	"climate-registry/internal/dto"
	"climate-registry/internal/service"
	"climate-registry/pkg/constants"
	"climate-registry/pkg/responses"
	"climate-registry/pkg/utils"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates an administrator and issues a token pair
// @Summary Administrator login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "login request"
// @Success 200 {object} responses.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// Refresh exchanges a refresh token for a new token pair
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "refresh token request"
// @Success 200 {object} responses.Response{data=dto.LoginResponse}
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ErrorWithDetail(c, responses.CodeBadRequest, "invalid request parameters", utils.FormatValidationError(err))
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		responses.Error(c, err)
		return
	}

	responses.Success(c, resp)
}

// GetMe returns the authenticated user stored by the auth middleware
// @Summary Current user info
// @Tags Auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} responses.Response{data=dto.UserInfo}
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userInfo, exists := c.Get(constants.JWTContextKey)
	if !exists {
		responses.Error(c, responses.ErrUnauthorized)
		return
	}

	responses.Success(c, userInfo)
}
