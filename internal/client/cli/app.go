// Package cli implements the interactive terminal client for userdesk:
// a read-eval-print loop over the session, profile and admin services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/userdesk/userdesk/internal/client/api"
	"github.com/userdesk/userdesk/internal/client/config"
	"github.com/userdesk/userdesk/internal/client/guard"
	"github.com/userdesk/userdesk/internal/client/migrations"
	"github.com/userdesk/userdesk/internal/client/models"
	"github.com/userdesk/userdesk/internal/client/repositories/tokens"
	"github.com/userdesk/userdesk/internal/client/services"
	"github.com/userdesk/userdesk/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	session services.SessionService
	admin   services.AdminService
	profile services.ProfileService
	reader  *bufio.Reader
}

// NewApp wires the full client: local token database, HTTP client with the
// bearer transport, and the three services the REPL dispatches to.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", c.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := migrations.Run(ctx, db); err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		db.Close()
		return nil, err
	}

	tokenRepo := tokens.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, tokenRepo, c.RequestTimeout)

	ss := services.NewSessionService(apiClient, tokenRepo, log)
	as := services.NewAdminService(apiClient, ss, log)
	ps := services.NewProfileService(apiClient, ss, log)

	return &App{
		config:  c,
		log:     log,
		db:      db,
		session: ss,
		admin:   as,
		profile: ps,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Session().Authenticated()
}

func (a *App) isAdmin() bool {
	u := a.session.CurrentUser()
	return u != nil && u.Role == models.RoleAdmin
}

// requireUser runs the authorization predicate for user-level commands
// against the current session snapshot and reports a refusal to the user.
// Callers proceed only on a true return.
func (a *App) requireUser() bool {
	switch guard.Authorize(a.session.Session(), guard.RoleUser) {
	case guard.Pending:
		printlnFn("Session is still resolving, try again in a moment.")
		return false
	case guard.RedirectLogin:
		printlnFn("Not logged in.")
		return false
	default:
		return true
	}
}

// getStatus renders the prompt suffix: the signed-in email plus the role
// when it is not the plain user role.
func (a *App) getStatus() string {
	u := a.session.CurrentUser()
	if u == nil {
		return ""
	}
	s := u.Email
	if u.Role == models.RoleAdmin {
		s = s + " " + string(u.Role)
	}
	return fmt.Sprintf("(%s)", s)
}

// Run resolves the persisted session and hands control to the REPL.
// It blocks until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	a.session.Bootstrap(ctx)
	if u := a.session.CurrentUser(); u != nil {
		a.log.Info(ctx, "session restored", "email", u.Email)
	}

	printlnFn("Welcome to userdesk (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) Close(ctx context.Context) {
	if err := a.session.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing local database", "error", err)
	}
}
