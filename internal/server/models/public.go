package models

import "time"

// PublicUser is the projection returned to clients. It never carries the
// password hash or the refresh-token set.
type PublicUser struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName,omitempty"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Whatsapp   string    `json:"whatsapp,omitempty"`
	State      string    `json:"state,omitempty"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"isActive"`
	Income     float64   `json:"income"`
	ReferredBy *string   `json:"referredBy"`
	Promoters  []string  `json:"promoters"`
	Partners   []string  `json:"partners"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreatedUser is the slimmer projection returned right after signup.
type CreatedUser struct {
	ID         string  `json:"id"`
	FullName   string  `json:"fullName"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	ReferredBy *string `json:"referredBy"`
}

// Created builds the signup-response projection of u.
func (u *User) Created() *CreatedUser {
	c := &CreatedUser{
		ID:       u.ID,
		FullName: u.FullName(),
		Email:    u.Email,
		Phone:    u.Phone,
	}
	if u.ReferredBy.Valid {
		ref := u.ReferredBy.String
		c.ReferredBy = &ref
	}
	return c
}

// Public builds the client-safe projection of u.
func (u *User) Public() *PublicUser {
	p := &PublicUser{
		ID:        u.ID,
		FullName:  u.FullName(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Whatsapp:  u.Whatsapp,
		State:     u.State,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Income:    u.Income,
		Promoters: u.Promoters,
		Partners:  u.Partners,
		CreatedAt: u.CreatedAt,
	}
	if u.ReferredBy.Valid {
		ref := u.ReferredBy.String
		p.ReferredBy = &ref
	}
	return p
}
