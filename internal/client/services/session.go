// Package services contains the application services of the userdesk client:
// session lifecycle, the admin user-list workflow and profile self-service.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/userdesk/userdesk/internal/client/api"
	"github.com/userdesk/userdesk/internal/client/models"
	"github.com/userdesk/userdesk/internal/client/repositories/tokens"
	"github.com/userdesk/userdesk/internal/logging"
	"github.com/userdesk/userdesk/internal/passwordx"
)

// SessionService owns the single client session: it resolves identity from a
// stored token at start-up, performs login/signup/logout and exposes a
// snapshot for authorization decisions.
//
// Contract:
//   - Bootstrap: one network call at most; any resolution failure collapses
//     to the anonymous state, never a boot error.
//   - Logout: best-effort server notification; local credentials are cleared
//     regardless of the network outcome.
//   - Last resolved state wins; no concurrency guarantees beyond that.
type SessionService interface {
	Bootstrap(ctx context.Context)
	LoadIdentity(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, fullName, email, password, confirmPassword string) error
	Logout(ctx context.Context) error
	Session() models.Session
	CurrentUser() *models.User
	ExpiresAt(ctx context.Context) time.Time
	Close(ctx context.Context) error
}

type sessionService struct {
	client   api.Client
	tokens   tokens.Repository
	log      logging.Logger
	validate *validator.Validate

	state models.BootState
	user  *models.User
}

// NewSessionService constructs a SessionService bound to the given API
// client and token store. The session starts in the Booting state.
func NewSessionService(client api.Client, tokens tokens.Repository, log logging.Logger) SessionService {
	return &sessionService{
		client:   client,
		tokens:   tokens,
		log:      log,
		validate: validator.New(),
		state:    models.BootBooting,
	}
}

// Bootstrap resolves the identity from a stored access token, if any. It
// always leaves the session in the Resolved state; errors are swallowed
// because "could not resolve" and "anonymous" are the same thing here.
func (s *sessionService) Bootstrap(ctx context.Context) {
	defer func() { s.state = models.BootResolved }()

	has, err := s.tokens.HasAccess(ctx)
	if err != nil {
		s.log.Warn(ctx, "token store unreadable, starting anonymous", "error", err)
		return
	}
	if !has {
		return
	}

	if err := s.LoadIdentity(ctx); err != nil {
		s.log.Warn(ctx, "stored token did not resolve, starting anonymous", "error", err)
	}
}

// LoadIdentity re-resolves the current identity from the backend. On any
// failure the identity is dropped so the session reads as anonymous.
func (s *sessionService) LoadIdentity(ctx context.Context) error {
	user, err := s.client.Me(ctx)
	if err != nil {
		s.user = nil
		return fmt.Errorf("identity resolution failed: %w", err)
	}
	s.user = user
	return nil
}

// Login authenticates, persists the issued token pair and re-resolves the
// identity. Blank credentials are rejected without a network call.
func (s *sessionService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrAllFieldsRequired
	}

	pair, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Save(ctx, pair.Access, pair.Refresh); err != nil {
		return nil, fmt.Errorf("failed to persist tokens: %w", err)
	}

	if err := s.LoadIdentity(ctx); err != nil {
		// The login response already carries the user; keep it rather than
		// failing a login the server accepted.
		s.log.Warn(ctx, "identity refresh after login failed", "error", err)
		s.user = user
	}

	return s.user, nil
}

// Signup creates an account. The validation chain short-circuits at the
// first failure and nothing is sent until every check passes.
func (s *sessionService) Signup(ctx context.Context, fullName, email, password, confirmPassword string) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(email) == "" || password == "" || confirmPassword == "" {
		return ErrAllFieldsRequired
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return ErrInvalidEmail
	}
	if password != confirmPassword {
		return ErrPasswordsDoNotMatch
	}
	if passwordx.Evaluate(password).Label != passwordx.LabelStrong {
		return ErrPasswordTooWeak
	}

	_, err := s.client.Signup(ctx, fullName, email, password, confirmPassword)
	return err
}

// Logout notifies the backend if a refresh token exists, then clears local
// credentials and identity unconditionally. Signing out locally must never
// depend on the backend being reachable.
func (s *sessionService) Logout(ctx context.Context) error {
	refresh, err := s.tokens.Refresh(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read refresh token", "error", err)
	}
	if refresh != "" {
		if err := s.client.Logout(ctx, refresh); err != nil {
			s.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
		}
	}

	s.user = nil
	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	return nil
}

// Session returns a snapshot for authorization decisions.
func (s *sessionService) Session() models.Session {
	return models.Session{BootState: s.state, Identity: s.user}
}

// CurrentUser returns the resolved identity, or nil when anonymous.
func (s *sessionService) CurrentUser() *models.User {
	return s.user
}

// ExpiresAt peeks at the access token's exp claim without verifying the
// signature, for display only. Authorization always stays with the backend.
// Returns the zero time when no token is stored or the claim is unreadable.
func (s *sessionService) ExpiresAt(ctx context.Context) time.Time {
	access, err := s.tokens.Access(ctx)
	if err != nil || access == "" {
		return time.Time{}
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Close releases resources held by the underlying client.
func (s *sessionService) Close(ctx context.Context) error {
	return s.client.Close()
}
