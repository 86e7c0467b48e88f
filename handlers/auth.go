package handlers

import (
	"errors"
	"net/http"

	"ainfakroun/i18n"
	"ainfakroun/middleware"
	"ainfakroun/services/auth"
	"ainfakroun/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login, logout and the current-user lookup.
type AuthHandler struct {
	Service auth.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func registerErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return http.StatusBadRequest, "register.invalid_email"
	case errors.Is(err, auth.ErrWeakPassword):
		return http.StatusBadRequest, "register.weak_password"
	case errors.Is(err, auth.ErrNameTooShort):
		return http.StatusBadRequest, "register.name_too_short"
	case errors.Is(err, auth.ErrEmailTaken):
		return http.StatusBadRequest, "register.email_taken"
	default:
		return http.StatusInternalServerError, "register.failed"
	}
}

// RegisterHandler handles POST /api/auth/register. New accounts always start
// as viewers.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": i18n.T(lang, "register.invalid_email")})
		return
	}

	user, err := h.Service.Register(req.Email, req.Password, req.Name)
	if err != nil {
		status, code := registerErrorCode(err)
		if status == http.StatusInternalServerError {
			utils.GetLogger().Error("RegisterHandler: registration failed", zap.Error(err))
		}
		c.JSON(status, gin.H{"success": false, "message": i18n.T(lang, code)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": i18n.T(lang, "register.success"),
		"user": gin.H{
			"id":    user.ID.Hex(),
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}

// LoginHandler handles POST /api/auth/login. On success the token is
// returned in the body and mirrored into the session cookie for browser
// clients.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": i18n.T(lang, "auth.invalid_credentials")})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": i18n.T(lang, "auth.invalid_credentials")})
		case errors.Is(err, auth.ErrAccountDisabled):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": i18n.T(lang, "auth.account_disabled")})
		default:
			utils.GetLogger().Error("LoginHandler: authentication failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": i18n.T(lang, "auth.login_failed")})
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, resp.Token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// LogoutHandler handles POST /api/auth/logout. The token is revoked when a
// denylist backend is configured; the cookie is cleared either way.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))

	authHeader := c.GetHeader("Authorization")
	token := ""
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else if cookie, err := c.Cookie(middleware.SessionCookie); err == nil {
		token = cookie
	}
	if token != "" {
		if err := h.Service.SignOut(token); err != nil {
			utils.GetLogger().Warn("LogoutHandler: failed to revoke token", zap.Error(err))
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": i18n.T(lang, "auth.signed_out")})
}

// MeHandler handles GET /api/auth/me for an authenticated session.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserID)
	user, err := h.Service.GetUser(userID)
	if err != nil {
		respondStoreError(c, err, "User not found", "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":        user.ID.Hex(),
			"email":     user.Email,
			"name":      user.Name,
			"role":      user.Role,
			"isActive":  user.IsActive,
			"lastLogin": user.LastLogin,
			"createdAt": user.CreatedAt,
		},
	})
}
