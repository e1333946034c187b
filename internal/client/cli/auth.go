package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/userdesk/userdesk/internal/client/api"
	"github.com/userdesk/userdesk/internal/client/models"
	"github.com/userdesk/userdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for the full set of registration fields and attempts to
// create an account. Passwords are read without echo and wiped before
// returning. On success the user still has to log in explicitly.
func (a *App) Signup(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.session.Signup(ctx, fullName, email, string(password), string(confirm)); err != nil {
		printlnFn("Signup failed:", err.Error())
		return err
	}

	printlnFn("Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates against the backend.
// On success the token pair is already persisted by the session service;
// admins get a hint about the users console.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Logged in as", user.Email)
	if user.Role == models.RoleAdmin {
		printlnFn("Admin account detected, the 'users' console is available.")
	}
	return nil
}

// Whoami prints the signed-in identity and the access token expiry.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireUser() {
		return nil
	}

	u := a.session.CurrentUser()
	printlnFn(fmt.Sprintf("%s <%s>, role %s", u.FullName, u.Email, u.Role))
	if exp := a.session.ExpiresAt(ctx); !exp.IsZero() {
		printlnFn("Access token expires at", exp.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

// Logout revokes the refresh token when possible and always drops the
// local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
