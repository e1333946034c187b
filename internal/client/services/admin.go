package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/userdesk/userdesk/internal/client/api"
	"github.com/userdesk/userdesk/internal/client/models"
	"github.com/userdesk/userdesk/internal/logging"
)

// AdminService drives the paginated user listing and the confirm-guarded
// activate/deactivate workflow. The listing is always re-derived from the
// server after a successful mutation, never patched in place; a failed fetch
// keeps the previous page visible.
type AdminService interface {
	FetchPage(ctx context.Context, page int) error
	Refresh(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error

	Users() []models.User
	Page() int
	Count() int
	TotalPages() int
	HasPrev() bool
	HasNext() bool

	RequestAction(userID int64, action models.AccountAction) (*models.ConfirmRequest, error)
	Pending() *models.ConfirmRequest
	Confirm(ctx context.Context) error
	Cancel()
}

type adminService struct {
	client  api.Client
	session SessionService
	log     logging.Logger

	// mu guards the listing state. The listing request itself runs outside
	// the lock, so callers may overlap fetches; gen decides which response
	// wins. A response whose generation has been superseded by a newer
	// FetchPage call is discarded.
	mu      sync.Mutex
	loaded  bool
	page    int
	count   int
	users   []models.User
	pending *models.ConfirmRequest
	gen     uint64
}

// NewAdminService constructs an AdminService. The session is consulted for
// the self-action guard.
func NewAdminService(client api.Client, session SessionService, log logging.Logger) AdminService {
	return &adminService{client: client, session: session, log: log, page: 1}
}

// FetchPage loads one page of the listing. The requested page is clamped to
// [1, totalPages] before any request is sent, using the last known count; on
// first load only the lower bound applies. On failure the previous listing
// is left untouched.
func (s *adminService) FetchPage(ctx context.Context, page int) error {
	s.mu.Lock()
	if page < 1 {
		page = 1
	}
	if s.loaded {
		if tp := models.TotalPages(s.count, models.DefaultPageSize); page > tp {
			page = tp
		}
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	res, err := s.client.ListUsers(ctx, page)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Error(ctx, "failed to fetch users", "page", page, "error", err)
		return fmt.Errorf("failed to fetch users: %w", err)
	}
	if gen != s.gen {
		s.log.Debug(ctx, "discarding superseded user list response", "page", page)
		return nil
	}

	s.loaded = true
	s.users = res.Results
	s.count = res.Count
	s.page = page

	// The server's count is authoritative; it may shrink under us.
	if tp := models.TotalPages(s.count, models.DefaultPageSize); s.page > tp {
		s.page = tp
	}

	return nil
}

// Refresh refetches the current page.
func (s *adminService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()
	return s.FetchPage(ctx, page)
}

func (s *adminService) NextPage(ctx context.Context) error {
	s.mu.Lock()
	if s.page >= models.TotalPages(s.count, models.DefaultPageSize) {
		s.mu.Unlock()
		return nil
	}
	page := s.page + 1
	s.mu.Unlock()
	return s.FetchPage(ctx, page)
}

func (s *adminService) PrevPage(ctx context.Context) error {
	s.mu.Lock()
	if s.page <= 1 {
		s.mu.Unlock()
		return nil
	}
	page := s.page - 1
	s.mu.Unlock()
	return s.FetchPage(ctx, page)
}

func (s *adminService) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users
}

func (s *adminService) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *adminService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *adminService) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.TotalPages(s.count, models.DefaultPageSize)
}

func (s *adminService) HasPrev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page > 1
}

func (s *adminService) HasNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page < models.TotalPages(s.count, models.DefaultPageSize)
}

// RequestAction creates the pending confirmation for an activate/deactivate.
// The guards are hard rules, not UI hints: self-targeting, redundant
// transitions and a second concurrent confirmation are all refused here,
// before any request could be issued.
func (s *adminService) RequestAction(userID int64, action models.AccountAction) (*models.ConfirmRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return nil, ErrActionPending
	}

	if me := s.session.CurrentUser(); me != nil && me.ID == userID {
		return nil, ErrSelfAction
	}

	var target *models.User
	for i := range s.users {
		if s.users[i].ID == userID {
			target = &s.users[i]
			break
		}
	}
	if target == nil {
		return nil, ErrUserNotListed
	}

	if action == models.ActionActivate && target.IsActive {
		return nil, ErrAlreadyActive
	}
	if action == models.ActionDeactivate && !target.IsActive {
		return nil, ErrAlreadyInactive
	}

	s.pending = &models.ConfirmRequest{UserID: userID, Action: action, Email: target.Email}
	return s.pending, nil
}

// Pending returns the confirmation awaiting a decision, or nil.
func (s *adminService) Pending() *models.ConfirmRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Confirm issues the pending mutation. The confirmation is destroyed on
// either outcome. On success the current page is refetched so the listing
// reflects the server's state; a refetch failure is logged but does not turn
// the succeeded action into an error.
func (s *adminService) Confirm(ctx context.Context) error {
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return ErrNoPendingAction
	}
	req := *s.pending
	s.pending = nil
	page := s.page
	s.mu.Unlock()

	var err error
	switch req.Action {
	case models.ActionDeactivate:
		err = s.client.DeactivateUser(ctx, req.UserID)
	default:
		err = s.client.ActivateUser(ctx, req.UserID)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", req.Action, err)
	}

	if err := s.FetchPage(ctx, page); err != nil {
		s.log.Error(ctx, "refetch after action failed", "error", err)
	}
	return nil
}

// Cancel destroys the pending confirmation, if any.
func (s *adminService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}
