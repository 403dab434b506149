package auth

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth guards protected routes. Requests without a valid session are
// redirected to the login page and never reach the handler. Valid sessions
// are re-saved so the idle-expiry window slides with activity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// re-set the user id so the session counts as written and Save
		// re-issues the cookie, refreshing the idle window
		session := sessions.Default(c)
		session.Set(sessionKeyUserID, userID)
		if err := session.Save(); err != nil {
			log.Error("failed to refresh session", "error", err)
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}
