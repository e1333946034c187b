package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/userdesk/userdesk/internal/client/models"
)

const (
	pathSignup         = "/api/auth/signup/"
	pathLogin          = "/api/auth/login/"
	pathLogout         = "/api/auth/logout/"
	pathMe             = "/api/auth/me"
	pathProfile        = "/api/users/me/"
	pathChangePassword = "/api/users/change-password/"
	pathAdminUsers     = "/api/admin/users/"
)

// maxBodySize caps how much of a response we are willing to read.
const maxBodySize = 1 << 20

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the backend at baseURL. Every request
// goes through the credential-attaching gateway transport backed by tokens.
func NewHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: http.DefaultTransport, tokens: tokens},
		},
	}
}

// do executes one JSON round-trip. Transport failures map to ErrUnavailable;
// non-2xx responses become *Error carrying the backend's message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrUnavailable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

type signupRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

type profileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type changePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// authResponse is the login/signup envelope.
type authResponse struct {
	Message string           `json:"message"`
	Tokens  models.TokenPair `json:"tokens"`
	User    *models.User     `json:"user"`
}

type userResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type listUsersResponse struct {
	Results []models.User `json:"results"`
	Count   int           `json:"count"`
}

func (c *HTTPClient) Signup(ctx context.Context, fullName, email, password, confirmPassword string) (*models.User, error) {
	req := signupRequest{FullName: fullName, Email: email, Password: password, ConfirmPassword: confirmPassword}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, pathSignup, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.TokenPair, *models.User, error) {
	req := loginRequest{Email: email, Password: password}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, pathLogin, req, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.Tokens, resp.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, pathLogout, logoutRequest{Refresh: refreshToken}, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, pathMe, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, fullName, email string) (*models.User, error) {
	req := profileRequest{FullName: fullName, Email: email}

	var resp userResponse
	if err := c.do(ctx, http.MethodPatch, pathProfile, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) error {
	req := changePasswordRequest{
		OldPassword:        oldPassword,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirmNewPassword,
	}
	return c.do(ctx, http.MethodPatch, pathChangePassword, req, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context, page int) (*models.UserPage, error) {
	var resp listUsersResponse
	path := fmt.Sprintf("%s?page=%d", pathAdminUsers, page)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return &models.UserPage{
		Results:  resp.Results,
		Count:    resp.Count,
		Page:     page,
		PageSize: models.DefaultPageSize,
	}, nil
}

func (c *HTTPClient) ActivateUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s%d/activate/", pathAdminUsers, userID), nil, nil)
}

func (c *HTTPClient) DeactivateUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s%d/deactivate/", pathAdminUsers, userID), nil, nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
