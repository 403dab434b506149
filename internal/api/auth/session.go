// Package auth binds browsers to logged-in users via signed session cookies.
package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionKeyUserID = "user_id"
	sessionKeyToken  = "session_token"
)

// ContextKeyUserID is the gin context key under which RequireAuth stores the
// authenticated user's id.
const ContextKeyUserID = "user_id"

// StartSession binds the caller's browser to the user id. Any prior session
// state is dropped and a fresh token is generated, so a cookie captured
// before login cannot be replayed into an authenticated session.
func StartSession(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionKeyUserID, userID)
	session.Set(sessionKeyToken, uuid.New().String())
	return session.Save()
}

// EndSession clears the browser's session binding.
func EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// CurrentUserID returns the user id bound to the session, if any.
func CurrentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	userID, ok := session.Get(sessionKeyUserID).(uint)
	if !ok {
		return 0, false
	}
	return userID, true
}
