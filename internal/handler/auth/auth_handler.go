// Package auth provides the authentication HTTP handlers.
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/handler"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/response"
	authService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/auth"
)

// Handler handles auth endpoints.
type Handler struct {
	authService *authService.AuthService
}

// NewHandler creates the auth handler.
func NewHandler(authSvc *authService.AuthService) *Handler {
	return &Handler{
		authService: authSvc,
	}
}

// RegisterRoutes registers the public auth routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}
}

// RegisterProtectedRoutes registers routes that require a session.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/change-password", h.ChangePassword)
	}
}

// Register registers an operator account
// @Summary Register an operator account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body authService.RegisterRequest true "request body"
// @Success 200 {object} response.Response{data=authService.UserInfo}
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req authService.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	handler.MustSucceed(c, err, user)
}

// Login logs an operator in
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body authService.LoginRequest true "request body"
// @Success 200 {object} response.Response{data=authService.LoginResponse}
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req authService.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}

// Refresh rotates a refresh token
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body authService.RefreshRequest true "request body"
// @Success 200 {object} response.Response{data=jwt.TokenPair}
// @Router /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req authService.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), &req)
	handler.MustSucceed(c, err, pair)
}

// LogoutRequest carries the token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Logout revokes a refresh token
// @Summary Logout
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "request body"
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	err := h.authService.Logout(c.Request.Context(), req.RefreshToken)
	handler.MustSucceedWithMessage(c, err, "logged out", nil)
}

// GetProfile returns the current operator
// @Summary Get current operator profile
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} response.Response{data=authService.UserInfo}
// @Router /auth/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := handler.RequireUserID(c)
	if !ok {
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	handler.MustSucceed(c, err, profile)
}

// ChangePassword replaces the current operator's credential
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body authService.ChangePasswordRequest true "request body"
// @Success 200 {object} response.Response
// @Router /auth/change-password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := handler.RequireUserID(c)
	if !ok {
		return
	}

	var req authService.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid parameters")
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), userID, &req)
	handler.MustSucceedWithMessage(c, err, "password changed", nil)
}
