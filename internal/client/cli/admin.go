package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/userdesk/userdesk/internal/client/guard"
	"github.com/userdesk/userdesk/internal/client/models"
)

// Users opens the admin user console. Access is checked against the current
// session snapshot first; non-admins never trigger a listing request.
func (a *App) Users(ctx context.Context) error {
	switch guard.Authorize(a.session.Session(), guard.RoleAdmin) {
	case guard.Pending:
		printlnFn("Session is still resolving, try again in a moment.")
		return nil
	case guard.RedirectLogin:
		printlnFn("You must log in first.")
		return nil
	case guard.RedirectProfile:
		printlnFn("Admin privileges required.")
		return nil
	}

	if err := a.admin.FetchPage(ctx, 1); err != nil {
		printlnFn("Failed to load users:", err.Error())
		return err
	}
	a.printUserPage()

	return a.usersLoop(ctx)
}

// usersLoop is the admin console sub-REPL. It returns on "back" or when
// input is exhausted.
//
// Commands:
//   - list                 — reprint the current page
//   - n | next, p | prev   — page navigation
//   - page <n>             — jump to a page
//   - refresh              — refetch the current page
//   - activate <id>        — enable an account (with confirmation)
//   - deactivate <id>      — disable an account (with confirmation)
//   - b | back             — leave the console
func (a *App) usersLoop(ctx context.Context) error {
	for {
		line, err := getSimpleText(a.reader, "users>", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: list, (n)ext, (p)rev, page <n>, refresh, activate <id>, deactivate <id>, (b)ack")

		case "list":
			a.printUserPage()

		case "n", "next":
			if err := a.admin.NextPage(ctx); err != nil {
				printlnFn("Failed to load users:", err.Error())
				continue
			}
			a.printUserPage()

		case "p", "prev":
			if err := a.admin.PrevPage(ctx); err != nil {
				printlnFn("Failed to load users:", err.Error())
				continue
			}
			a.printUserPage()

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			page, err := strconv.Atoi(args[0])
			if err != nil {
				printlnFn("Usage: page <n>")
				continue
			}
			if err := a.admin.FetchPage(ctx, page); err != nil {
				printlnFn("Failed to load users:", err.Error())
				continue
			}
			a.printUserPage()

		case "refresh":
			if err := a.admin.Refresh(ctx); err != nil {
				printlnFn("Failed to load users:", err.Error())
				continue
			}
			a.printUserPage()

		case "activate":
			a.accountAction(ctx, args, models.ActionActivate)

		case "deactivate":
			a.accountAction(ctx, args, models.ActionDeactivate)

		case "b", "back":
			return nil

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// accountAction stages an activate/deactivate request for the given user id
// and asks for confirmation before anything reaches the server.
func (a *App) accountAction(ctx context.Context, args []string, action models.AccountAction) {
	verb := "Activate"
	if action == models.ActionDeactivate {
		verb = "Deactivate"
	}

	if len(args) == 0 {
		printlnFn(fmt.Sprintf("Usage: %s <id>", strings.ToLower(verb)))
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn(fmt.Sprintf("Usage: %s <id>", strings.ToLower(verb)))
		return
	}

	req, err := a.admin.RequestAction(id, action)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	prompt := fmt.Sprintf("%s user %d (%s)?", verb, req.UserID, req.Email)
	if !GetConfirmation(a.reader, prompt, os.Stdout) {
		a.admin.Cancel()
		printlnFn("Cancelled.")
		return
	}

	if err := a.admin.Confirm(ctx); err != nil {
		printlnFn("Action failed:", err.Error())
		return
	}
	printlnFn("Done.")
	a.printUserPage()
}

func (a *App) printUserPage() {
	users := a.admin.Users()
	if len(users) == 0 {
		printlnFn("No users found.")
		return
	}

	for _, u := range users {
		status := "active"
		if !u.IsActive {
			status = "inactive"
		}
		printlnFn(fmt.Sprintf("%4d  %-28s  %-20s  %-5s  %s", u.ID, u.Email, u.FullName, u.Role, status))
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d users)", a.admin.Page(), a.admin.TotalPages(), a.admin.Count()))
}
