package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/namesprouts/namesprouts/internal/api/auth"
	"github.com/namesprouts/namesprouts/internal/database"
)

// RegisterForm describes the registration form for API clients.
func (h *Handler) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "email", "password"},
	})
}

// Register creates a new account from the registration form.
func (h *Handler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if username == "" || email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "all fields are required",
		})
		return
	}

	if _, err := h.db.CreateUser(c.Request.Context(), username, email, password); err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "username or email already exists",
			})
			return
		}
		log.Error("failed to register user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to create account",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// LoginForm describes the login form, or redirects home when a session
// already exists.
func (h *Handler) LoginForm(c *gin.Context) {
	if _, ok := auth.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"username", "password"},
	})
}

// Login verifies credentials and starts a fresh session.
func (h *Handler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := h.db.VerifyUser(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, database.ErrInvalidCredentials) {
			log.Error("failed to verify user", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "login failed",
			})
			return
		}
		// uniform error, no user enumeration
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid username or password",
		})
		return
	}

	if err := auth.StartSession(c, user.ID); err != nil {
		log.Error("failed to start session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "login failed",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/design")
}

// Logout clears the session.
func (h *Handler) Logout(c *gin.Context) {
	if err := auth.EndSession(c); err != nil {
		log.Error("failed to end session", "error", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
