package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a registered account. Only the bcrypt hash of the password
// is ever stored. Users are immutable after registration and never deleted
// by the application.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Projects []Project `gorm:"constraint:OnDelete:CASCADE;"`
}

// CreateUser registers a new user with a bcrypt hash of the password.
// It returns ErrDuplicateUser if the username or email is already taken.
func (c *Client) CreateUser(ctx context.Context, username, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := c.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateUser
		}
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

// VerifyUser checks a username/password pair and returns the matching user.
// Any failure, including an unknown username, yields ErrInvalidCredentials.
func (c *Client) VerifyUser(ctx context.Context, username, password string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by username", "error", err)
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID returns the user with the given id.
func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error("failed to get user by ID", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite reports constraint failures before gorm translation on
	// some statements.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
