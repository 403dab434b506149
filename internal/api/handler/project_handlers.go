package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/namesprouts/namesprouts/internal/api/models"
	"github.com/namesprouts/namesprouts/internal/database"
	"github.com/namesprouts/namesprouts/internal/flowers"
)

// DesignForm describes the design form, including the accepted months and
// the account it belongs to.
func (h *Handler) DesignForm(c *gin.Context) {
	user, err := h.db.GetUserByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		log.Error("failed to load user for design form", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to load account",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"fields":   []string{"name", "month"},
		"months":   flowers.Months,
	})
}

// designInput validates the design form and returns name and month.
func designInput(c *gin.Context) (string, string, bool) {
	name := strings.TrimSpace(c.PostForm("name"))
	month := c.PostForm("month")

	if name == "" || month == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "name and month are required",
		})
		return "", "", false
	}
	if !flowers.ValidMonth(month) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "unknown month",
		})
		return "", "", false
	}
	return name, month, true
}

// CreateProject saves a new design for the logged-in user.
func (h *Handler) CreateProject(c *gin.Context) {
	userID := currentUserID(c)

	name, month, ok := designInput(c)
	if !ok {
		return
	}

	imagePath := h.catalog.ImagePath(c.Request.Context(), month)
	if _, err := h.db.CreateProject(c.Request.Context(), userID, name, month, imagePath); err != nil {
		log.Error("failed to create project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to save design",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects")
}

// ListProjects returns the logged-in user's designs, newest first.
func (h *Handler) ListProjects(c *gin.Context) {
	userID := currentUserID(c)

	projects, err := h.db.ListProjectsByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error("failed to list projects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "failed to load designs",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": models.ToProjects(projects),
	})
}

// GetProject returns a single owned design for the edit form.
func (h *Handler) GetProject(c *gin.Context) {
	userID := currentUserID(c)

	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid project id",
		})
		return
	}

	project, err := h.db.GetProjectByID(c.Request.Context(), id, userID)
	if err != nil {
		h.projectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": models.ToProject(*project),
		"months":  flowers.Months,
	})
}

// UpdateProject edits an owned design and recomputes its image path.
func (h *Handler) UpdateProject(c *gin.Context) {
	userID := currentUserID(c)

	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid project id",
		})
		return
	}

	name, month, ok := designInput(c)
	if !ok {
		return
	}

	imagePath := h.catalog.ImagePath(c.Request.Context(), month)
	if err := h.db.UpdateProject(c.Request.Context(), id, userID, name, month, imagePath); err != nil {
		h.projectError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects")
}

// DeleteProject removes an owned design.
func (h *Handler) DeleteProject(c *gin.Context) {
	userID := currentUserID(c)

	id, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid project id",
		})
		return
	}

	if err := h.db.DeleteProject(c.Request.Context(), id, userID); err != nil {
		h.projectError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/projects")
}

// projectError maps store errors on project operations to responses. Missing
// and foreign records look identical to the client, so ownership can't be
// probed by guessing ids.
func (h *Handler) projectError(c *gin.Context, err error) {
	if errors.Is(err, database.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "project not found or access denied",
		})
		return
	}
	log.Error("project operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "something went wrong",
	})
}
