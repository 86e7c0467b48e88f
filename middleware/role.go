package middleware

import (
	"net/http"

	"ainfakroun/i18n"
	"ainfakroun/models"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects sessions whose role ranks below min. Content writes
// require editor; user administration requires admin. Must run after
// JWTAuth.
func RequireRole(min string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if models.RoleRank(role) < models.RoleRank(min) {
			lang := i18n.DetectLanguage(c.GetHeader("Accept-Language"))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": i18n.T(lang, "auth.forbidden"),
			})
			return
		}
		c.Next()
	}
}
