// Package refreshtokens declares the repository contract for the per-user
// set of currently valid refresh tokens.
package refreshtokens

import (
	"context"
	"time"

	"github.com/Dev-Puneet-V/xianinfotech/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking
// refresh tokens. Row existence is set membership: deleting a row revokes
// the token server-side even though the token itself is self-describing.
type Repository interface {
	// Create stores a new refresh token for userID with an expiry of now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find looks up a refresh token by its token string and returns its
	// metadata, or common.ErrorNotFound when no user holds it.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting an absent
	// token is a no-op.
	Delete(ctx context.Context, token string) error

	// DeleteReturning removes a refresh token and reports which user held
	// it. Returns common.ErrorNotFound when no row matched.
	DeleteReturning(ctx context.Context, token string) (string, error)
}
