package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/miniauth/backend/internal/db"
	"github.com/miniauth/backend/internal/model"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrMisconfigured = errors.New("auth config invalid")
)

// UserStore is the slice of the credential store the auth service needs.
// *db.Postgres satisfies it; tests substitute fakes.
type UserStore interface {
	EnsureUserSchema(ctx context.Context) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.UserSummary, error)
}

type AuthService struct {
	store  UserStore
	tokens *TokenService
}

func NewAuthService(store UserStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

func (s *AuthService) EnsureSchema(ctx context.Context) error {
	return s.store.EnsureUserSchema(ctx)
}

// EnsureAdmin seeds the administrative account if it does not exist yet.
// Startup is single-threaded, so a lookup guard is enough to keep the seed
// idempotent across restarts.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: ADMIN_USERNAME/ADMIN_PASSWORD are required", ErrMisconfigured)
	}

	_, err := s.store.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !db.IsNoRows(err) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.store.CreateUser(ctx, username, hash)
	if err != nil && db.IsUniqueViolation(err) {
		// Another instance seeded the row first.
		return nil
	}
	return err
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password return the identical error so the two cases
// are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", ErrUnauthorized
	}

	return s.tokens.Issue(user.Username)
}

// VerifySession validates a session token and returns its subject.
func (s *AuthService) VerifySession(tokenString string) (string, error) {
	return s.tokens.Validate(tokenString)
}

// ListUsers returns all users, gated on a valid session token. Any
// authenticated user may list; there is no per-user scoping.
func (s *AuthService) ListUsers(ctx context.Context, tokenString string) ([]model.UserSummary, error) {
	if _, err := s.tokens.Validate(tokenString); err != nil {
		return nil, ErrUnauthorized
	}
	return s.store.ListUsers(ctx)
}
