package middleware

import (
	"net/http"
	"strings"
	"time"

	"ainfakroun/i18n"
	"ainfakroun/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie carrying the session token for browser
// navigation; API clients use the Authorization header.
const SessionCookie = "af_session"

// Context keys populated by JWTAuth.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

func sessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// JWTAuth validates the session token and exposes the identity on the
// context. Every mutating route sits behind this gate; there is no
// UI-redirect bypass.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))

		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": i18n.T(lang, "auth.required"),
			})
			return
		}

		session, err := utils.ParseSession(token)
		if err != nil || time.Now().After(session.ExpiresAt) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": i18n.T(lang, "auth.invalid_token"),
			})
			return
		}

		// Signed-out tokens stay invalid until their natural expiry.
		if utils.IsTokenRevoked(utils.HashToken(token)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": i18n.T(lang, "auth.invalid_token"),
			})
			return
		}

		c.Set(CtxUserID, session.UserID)
		c.Set(CtxUserEmail, session.Email)
		c.Set(CtxUserRole, session.Role)
		c.Next()
	}
}
