package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Project represents a saved flower design owned by a user. Every query
// against projects is filtered on the owner's id, so one user can never see
// or touch another user's designs.
type Project struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Name        string    `gorm:"not null"`
	Month       string    `gorm:"not null"`
	FlowerImage string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// CreateProject stores a new design for the given user.
func (c *Client) CreateProject(ctx context.Context, userID uint, name, month, imagePath string) (*Project, error) {
	project := Project{
		UserID:      userID,
		Name:        name,
		Month:       month,
		FlowerImage: imagePath,
	}
	if err := c.db.WithContext(ctx).Create(&project).Error; err != nil {
		log.Error("failed to create project", "error", err)
		return nil, err
	}
	return &project, nil
}

// ListProjectsByUser returns all designs owned by the user, newest first.
func (c *Client) ListProjectsByUser(ctx context.Context, userID uint) ([]Project, error) {
	var projects []Project
	if err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		log.Error("failed to list projects", "error", err)
		return nil, err
	}
	return projects, nil
}

// GetProjectByID returns the design only if it exists and is owned by the
// user; otherwise ErrProjectNotFound.
func (c *Client) GetProjectByID(ctx context.Context, id, userID uint) (*Project, error) {
	var project Project
	err := c.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		log.Error("failed to get project", "error", err)
		return nil, err
	}
	return &project, nil
}

// UpdateProject updates name, month and image path of an owned design.
func (c *Client) UpdateProject(ctx context.Context, id, userID uint, name, month, imagePath string) error {
	result := c.db.WithContext(ctx).
		Model(&Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"name":         name,
			"month":        month,
			"flower_image": imagePath,
		})
	if result.Error != nil {
		log.Error("failed to update project", "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// DeleteProject removes an owned design.
func (c *Client) DeleteProject(ctx context.Context, id, userID uint) error {
	result := c.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Project{})
	if result.Error != nil {
		log.Error("failed to delete project", "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
