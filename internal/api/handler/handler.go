package handler

import (
	"net/http"
	"strconv"

	"github.com/ccoveille/go-safecast"
	"github.com/gin-gonic/gin"

	"github.com/namesprouts/namesprouts/internal/api/auth"
	"github.com/namesprouts/namesprouts/internal/database"
	"github.com/namesprouts/namesprouts/internal/flowers"
)

type Handler struct {
	db      *database.Client
	catalog *flowers.Catalog
}

func New(db *database.Client, catalog *flowers.Catalog) *Handler {
	return &Handler{
		db:      db,
		catalog: catalog,
	}
}

// Home sends logged-in users to the design form and everyone else to login.
func (h *Handler) Home(c *gin.Context) {
	if _, ok := auth.CurrentUserID(c); ok {
		c.Redirect(http.StatusFound, "/design")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// NotFound handles unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "page not found",
	})
}

// currentUserID returns the user id stored by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return c.MustGet(auth.ContextKeyUserID).(uint)
}

func parseUintParam(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.ToUint(id)
}
