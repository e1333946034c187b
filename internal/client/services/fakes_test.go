package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/userdesk/userdesk/internal/client/models"
	"github.com/userdesk/userdesk/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeAPI implements api.Client with presets and call recording.
type fakeAPI struct {
	signupErr   error
	signupCalls int

	loginTokens models.TokenPair
	loginUser   *models.User
	loginErr    error
	loginCalls  int

	logoutErr        error
	logoutCalls      int
	logoutGotRefresh string

	meUser  *models.User
	meErr   error
	meCalls int

	updateErr       error
	updateCalls     int
	updateGotName   string
	updateGotEmail  string
	changePwErr     error
	changePwCalls   int
	changePwGot     [3]string
	listPages       map[int]*models.UserPage
	listErr         error
	listCalls       int
	listGotPages    []int
	listHook        func(page int)
	activateErr     error
	activateCalls   int
	activateGotID   int64
	deactivateErr   error
	deactivateCalls int
	deactivateGotID int64
}

func (f *fakeAPI) Close() error { return nil }

func (f *fakeAPI) Signup(_ context.Context, fullName, email, password, confirm string) (*models.User, error) {
	f.signupCalls++
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return &models.User{Email: email, FullName: fullName, Role: models.RoleUser, IsActive: true}, nil
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (*models.TokenPair, *models.User, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return nil, nil, f.loginErr
	}
	return &f.loginTokens, f.loginUser, nil
}

func (f *fakeAPI) Logout(_ context.Context, refresh string) error {
	f.logoutCalls++
	f.logoutGotRefresh = refresh
	return f.logoutErr
}

func (f *fakeAPI) Me(context.Context) (*models.User, error) {
	f.meCalls++
	return f.meUser, f.meErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, fullName, email string) (*models.User, error) {
	f.updateCalls++
	f.updateGotName, f.updateGotEmail = fullName, email
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.User{FullName: fullName, Email: email}, nil
}

func (f *fakeAPI) ChangePassword(_ context.Context, oldPw, newPw, confirmPw string) error {
	f.changePwCalls++
	f.changePwGot = [3]string{oldPw, newPw, confirmPw}
	return f.changePwErr
}

func (f *fakeAPI) ListUsers(_ context.Context, page int) (*models.UserPage, error) {
	f.listCalls++
	f.listGotPages = append(f.listGotPages, page)
	if f.listHook != nil {
		f.listHook(page)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	if p, ok := f.listPages[page]; ok {
		return p, nil
	}
	return &models.UserPage{Page: page, PageSize: models.DefaultPageSize}, nil
}

func (f *fakeAPI) ActivateUser(_ context.Context, id int64) error {
	f.activateCalls++
	f.activateGotID = id
	return f.activateErr
}

func (f *fakeAPI) DeactivateUser(_ context.Context, id int64) error {
	f.deactivateCalls++
	f.deactivateGotID = id
	return f.deactivateErr
}

// memTokens is an in-memory tokens.Repository.
type memTokens struct {
	access  string
	refresh string

	saveErr    error
	clearErr   error
	readErr    error
	clearCalls int
}

func (m *memTokens) Save(_ context.Context, access, refresh string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.access, m.refresh = access, refresh
	return nil
}

func (m *memTokens) Clear(context.Context) error {
	m.clearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.access, m.refresh = "", ""
	return nil
}

func (m *memTokens) Access(context.Context) (string, error)  { return m.access, m.readErr }
func (m *memTokens) Refresh(context.Context) (string, error) { return m.refresh, m.readErr }

func (m *memTokens) HasAccess(context.Context) (bool, error) {
	return m.access != "", m.readErr
}

// fakeSession implements SessionService for admin/profile tests.
type fakeSession struct {
	user      *models.User
	loadErr   error
	loadCalls int
}

func (f *fakeSession) Bootstrap(context.Context) {}

func (f *fakeSession) LoadIdentity(context.Context) error {
	f.loadCalls++
	return f.loadErr
}

func (f *fakeSession) Login(context.Context, string, string) (*models.User, error) {
	return f.user, nil
}

func (f *fakeSession) Signup(context.Context, string, string, string, string) error { return nil }
func (f *fakeSession) Logout(context.Context) error                                 { return nil }

func (f *fakeSession) Session() models.Session {
	return models.Session{BootState: models.BootResolved, Identity: f.user}
}

func (f *fakeSession) CurrentUser() *models.User           { return f.user }
func (f *fakeSession) ExpiresAt(context.Context) time.Time { return time.Time{} }
func (f *fakeSession) Close(context.Context) error         { return nil }
