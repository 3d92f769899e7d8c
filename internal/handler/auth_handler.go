package handler

import (
	"net/http"

	"storefront-backend/internal/apperr"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/service"
	"storefront-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
	cookies     *CookieHelper
}

func NewAuthHandler(authService *service.AuthService, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration and issues the first credential pair
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, apperr.Validation("username and password are required"))
		return
	}

	result, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, result.Pair)

	c.JSON(http.StatusOK, gin.H{
		"message": "registration successful",
		"user":    result.User,
	})
}

// Login authenticates a user and issues a credential pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, apperr.Validation("username and password are required"))
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, result.Pair)

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user":    result.User,
	})
}

// Logout clears the credential cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.ClearAuthCookies(c)
	utils.MessageResponse(c, "logout successful")
}

// Refresh rotates the credential pair using the refresh token cookie.
// On any rejection the cookies are cleared so the client falls back to
// a full login instead of retrying a dead token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		utils.HandleError(c, apperr.Authentication("refresh token missing"))
		return
	}

	result, err := h.authService.Refresh(refreshToken)
	if err != nil {
		h.cookies.ClearAuthCookies(c)
		utils.HandleError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, result.Pair)

	c.JSON(http.StatusOK, gin.H{
		"message": "token refreshed",
		"user":    result.User,
	})
}

// Me returns the current identity from storage
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"isAdmin":    user.IsAdmin,
		"created_at": user.CreatedAt,
	})
}
