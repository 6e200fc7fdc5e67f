// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, refresh-token rotation, and
// logout over JWT access tokens plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dev-Puneet-V/xianinfotech/internal/common"
	"github.com/Dev-Puneet-V/xianinfotech/internal/dbx"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/auth"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/config"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/models"
	"github.com/Dev-Puneet-V/xianinfotech/internal/server/repositories/repomanager"
)

const bcryptCost = 10

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SignupInput carries the raw registration fields before validation.
type SignupInput struct {
	FirstName    string
	LastName     string
	Email        string
	Password     string
	Phone        string
	Whatsapp     string
	State        string
	ReferralCode string
}

// UserService provides authentication-related operations:
// - Signup: validate input and create users
// - Login: verify credentials and mint tokens
// - Refresh: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token server-side
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	accessTokenSecret            []byte
	refreshTokenSecret           []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		accessTokenSecret:            []byte(cfg.AccessTokenSecret),
		refreshTokenSecret:           []byte(cfg.RefreshTokenSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Signup validates the input, resolves an optional referral code, hashes the
// password and creates the account. Validation problems come back as
// *ValidationError; a duplicate email as common.ErrEmailTaken.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if violations := validateSignup(in); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	repo := s.repomanager.Users(s.db)

	var referredBy sql.NullString
	if in.ReferralCode != "" {
		if _, err := uuid.Parse(in.ReferralCode); err != nil {
			return nil, newFieldError("referralCode", "Invalid referral code")
		}
		referrer, err := repo.GetByID(ctx, in.ReferralCode)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, newFieldError("referralCode", "Invalid referral code")
			}
			return nil, common.ErrorInternal
		}
		referredBy = sql.NullString{String: referrer.ID, Valid: true}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsActive:     true,
		Phone:        in.Phone,
		Whatsapp:     in.Whatsapp,
		State:        in.State,
		ReferredBy:   referredBy,
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns the user together
// with a fresh TokenPair. Unknown email and wrong password both map to
// common.ErrorUnauthorized so callers cannot probe for accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, common.ErrorUnauthorized
	}

	user.Promoters, user.Partners, err = repo.ListLinks(ctx, user.ID)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	pair, err := s.generateTokenPair(ctx, user, s.db)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh validates a refresh token against both its signature and the
// server-side token set, rotates it transactionally, and returns a fresh
// TokenPair. Tokens that fail either check yield common.ErrInvalidToken
// (or common.ErrTokenExpired for expired signatures).
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, s.refreshTokenSecret)
	if err != nil {
		return nil, err
	}

	stored, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}
	if stored.UserID != claims.UserID {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %v", err)
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user, tx)
		return genErr
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes a refresh token by removing it from the server-side set.
// A token no user holds yields common.ErrorNotFound.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	_, err := s.repomanager.RefreshTokens(s.db).DeleteReturning(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// --- helpers below ---

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, tx dbx.DBTX) (*TokenPair, error) {
	access, err := auth.GenerateToken(user.ID, user.Email, s.accessTokenSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateToken(user.ID, user.Email, s.refreshTokenSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
