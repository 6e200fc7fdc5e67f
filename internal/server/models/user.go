// Package models holds the persistent row types shared by repositories and
// services.
package models

import (
	"database/sql"
	"time"
)

// Roles assignable to an account. New users default to RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Kinds of referral-graph links between accounts.
const (
	LinkKindPromoter = "promoter"
	LinkKindPartner  = "partner"
)

// User is a single account row. PasswordHash holds a bcrypt hash; the
// plaintext never reaches this struct.
type User struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	PasswordHash    string
	Role            string
	IsActive        bool
	Income          float64
	Phone           string
	Whatsapp        string
	State           string
	ReferredBy      sql.NullString
	ReceivedPayment sql.NullString
	CreatedAt       time.Time

	// Referral graph neighbours. Loaded on demand; the session lifecycle
	// never consults them.
	Promoters []string
	Partners  []string
}

// FullName joins first and last name, tolerating an empty last name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
