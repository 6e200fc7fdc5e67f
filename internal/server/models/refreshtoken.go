package models

import "time"

// RefreshToken is one member of a user's revocable token set. Membership is
// row existence; removal is revocation.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
