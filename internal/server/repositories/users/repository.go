// Package users declares the repository contract for account rows.
package users

import (
	"context"

	"github.com/Dev-Puneet-V/xianinfotech/internal/server/models"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	// Create inserts a new user row. A duplicate email returns
	// common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given (already normalized) email,
	// or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// ListLinks returns the ids of the user's promoters and partners.
	ListLinks(ctx context.Context, userID string) (promoters, partners []string, err error)
}
