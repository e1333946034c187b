package cli

import (
	"bufio"
	"context"
	"io"
	"testing"
	"time"

	"github.com/userdesk/userdesk/internal/client/models"
	"github.com/userdesk/userdesk/internal/client/services"
)

// silencePrintln mutes user-facing output for the duration of a test.
func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// stubInputs replaces the interactive input seams with queues of canned
// answers. Each call pops the next value.
func stubInputs(t *testing.T, texts []string, passwords [][]byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return append([]byte(nil), v...), nil
	}

	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeSessionSvc struct {
	state models.BootState
	user  *models.User
	exp   time.Time

	loginGotEmail string
	loginGotPass  string
	loginUser     *models.User
	loginErr      error

	signupGot [4]string
	signupErr error

	logoutCalls int
	logoutErr   error
}

func (f *fakeSessionSvc) Bootstrap(ctx context.Context)          {}
func (f *fakeSessionSvc) LoadIdentity(ctx context.Context) error { return nil }
func (f *fakeSessionSvc) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.loginGotEmail, f.loginGotPass = email, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.user = f.loginUser
	return f.loginUser, nil
}
func (f *fakeSessionSvc) Signup(ctx context.Context, fullName, email, password, confirmPassword string) error {
	f.signupGot = [4]string{fullName, email, password, confirmPassword}
	return f.signupErr
}
func (f *fakeSessionSvc) Logout(ctx context.Context) error {
	f.logoutCalls++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.user = nil
	return nil
}
func (f *fakeSessionSvc) Session() models.Session {
	return models.Session{BootState: f.state, Identity: f.user}
}
func (f *fakeSessionSvc) CurrentUser() *models.User               { return f.user }
func (f *fakeSessionSvc) ExpiresAt(ctx context.Context) time.Time { return f.exp }
func (f *fakeSessionSvc) Close(ctx context.Context) error         { return nil }

var _ services.SessionService = (*fakeSessionSvc)(nil)

type fakeAdminSvc struct {
	users []models.User
	page  int
	count int
	total int

	fetchGot     []int
	fetchErr     error
	refreshCalls int
	nextCalls    int
	prevCalls    int

	pending    *models.ConfirmRequest
	requestGot *models.ConfirmRequest
	requestErr error

	confirmCalls int
	confirmErr   error
	cancelCalls  int
}

func (f *fakeAdminSvc) FetchPage(ctx context.Context, page int) error {
	f.fetchGot = append(f.fetchGot, page)
	if f.fetchErr != nil {
		return f.fetchErr
	}
	f.page = page
	return nil
}
func (f *fakeAdminSvc) Refresh(ctx context.Context) error {
	f.refreshCalls++
	return f.fetchErr
}
func (f *fakeAdminSvc) NextPage(ctx context.Context) error {
	f.nextCalls++
	return nil
}
func (f *fakeAdminSvc) PrevPage(ctx context.Context) error {
	f.prevCalls++
	return nil
}
func (f *fakeAdminSvc) Users() []models.User { return f.users }
func (f *fakeAdminSvc) Page() int            { return f.page }
func (f *fakeAdminSvc) Count() int           { return f.count }
func (f *fakeAdminSvc) TotalPages() int      { return f.total }
func (f *fakeAdminSvc) HasPrev() bool        { return f.page > 1 }
func (f *fakeAdminSvc) HasNext() bool        { return f.page < f.total }
func (f *fakeAdminSvc) RequestAction(userID int64, action models.AccountAction) (*models.ConfirmRequest, error) {
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	req := &models.ConfirmRequest{UserID: userID, Action: action, Email: "target@x.io"}
	f.requestGot = req
	f.pending = req
	return req, nil
}
func (f *fakeAdminSvc) Pending() *models.ConfirmRequest { return f.pending }
func (f *fakeAdminSvc) Confirm(ctx context.Context) error {
	f.confirmCalls++
	f.pending = nil
	return f.confirmErr
}
func (f *fakeAdminSvc) Cancel() {
	f.cancelCalls++
	f.pending = nil
}

var _ services.AdminService = (*fakeAdminSvc)(nil)

type fakeProfileSvc struct {
	draftName  string
	draftEmail string

	resetCalls int
	setName    []string
	setEmail   []string

	saveCalls int
	saveErr   error

	cpGot   [3]string
	cpCalls int
	cpErr   error
}

func (f *fakeProfileSvc) Reset() { f.resetCalls++ }
func (f *fakeProfileSvc) Draft() (string, string) {
	return f.draftName, f.draftEmail
}
func (f *fakeProfileSvc) SetFullName(v string) { f.setName = append(f.setName, v) }
func (f *fakeProfileSvc) SetEmail(v string)    { f.setEmail = append(f.setEmail, v) }
func (f *fakeProfileSvc) Save(ctx context.Context) error {
	f.saveCalls++
	return f.saveErr
}
func (f *fakeProfileSvc) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) error {
	f.cpCalls++
	f.cpGot = [3]string{oldPassword, newPassword, confirmNewPassword}
	return f.cpErr
}

var _ services.ProfileService = (*fakeProfileSvc)(nil)
