package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NguyenZak/ikigai-app-sub001/domain"
)

// SessionAuth creates the authentication half of the gate. It resolves
// the session cookie to a Principal before any handler runs, rebuilt
// fresh on every request so a revoked session is observed immediately.
// Absent, malformed and expired cookies all produce the same 401.
func SessionAuth(authSvc domain.AuthService, cookieName string) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		principal, err := authSvc.Authorize(c.Request.Context(), token, "")
		if err != nil {
			// Role checks happen downstream; any failure here is an
			// authentication failure and must not reveal its cause.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		// Convert uint to string for Casbin compatibility
		c.Set("user_id", fmt.Sprintf("%d", principal.UserID))
		c.Set("user_email", principal.Email)
		c.Set("user_role", principal.Role)
		c.Set("session_token", token)

		c.Next()
	})
}
