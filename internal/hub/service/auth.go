package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/Chickencurry27/artisthub/internal/hub/domain"
	"github.com/Chickencurry27/artisthub/internal/hub/store"
	"github.com/Chickencurry27/artisthub/pkg/cryptox"
	"github.com/Chickencurry27/artisthub/pkg/idx"
	"github.com/Chickencurry27/artisthub/pkg/slogx"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrWeakPassword       = errors.New("weak_password")
	ErrInvalidInput       = errors.New("invalid_input")
)

// AuthService covers registration, login, and logout. Sessions are minted
// through the injected SessionService so the two stay swappable in tests.
type AuthService struct {
	Store    store.Store
	Sessions *SessionService
}

// Register creates an account and logs it straight in. Duplicate emails
// surface as ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (domain.User, domain.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return domain.User{}, domain.Session{}, ErrInvalidInput
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, domain.Session{}, ErrWeakPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Tier:         domain.TierFree,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, domain.Session{}, ErrEmailTaken
		}
		return domain.User{}, domain.Session{}, err
	}

	session, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return user, session, nil
}

// Login verifies credentials and mints a session. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, domain.Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Session{}, ErrInvalidCredentials
		}
		return domain.User{}, domain.Session{}, err
	}

	if user.PasswordHash == "" {
		return domain.User{}, domain.Session{}, ErrInvalidCredentials
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, domain.Session{}, ErrInvalidCredentials
	}

	session, err := s.Sessions.Create(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("user logged in", slog.String("user_id", user.ID))
	return user, session, nil
}

// Logout invalidates the given session. Idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Invalidate(ctx, sessionID)
}

// UpdateName changes the account's display name.
func (s *AuthService) UpdateName(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidInput
	}
	return s.Store.Users().UpdateName(ctx, userID, name)
}
