// Package api implements the REST client for the account backend. All
// outbound requests pass through a gateway transport that attaches the bearer
// credential, except for the statically known public endpoints.
package api

import (
	"context"

	"github.com/userdesk/userdesk/internal/client/models"
)

// Client is the remote API surface the rest of the application depends on.
type Client interface {
	Close() error

	// Public endpoints (no credential attached).
	Signup(ctx context.Context, fullName, email, password, confirmPassword string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.TokenPair, *models.User, error)

	// Authenticated endpoints.
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, fullName, email string) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) error

	// Admin endpoints.
	ListUsers(ctx context.Context, page int) (*models.UserPage, error)
	ActivateUser(ctx context.Context, userID int64) error
	DeactivateUser(ctx context.Context, userID int64) error
}
