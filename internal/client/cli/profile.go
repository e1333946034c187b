package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/userdesk/userdesk/internal/client/services"
	"github.com/userdesk/userdesk/internal/common"
)

// ShowProfile prints the signed-in user's account details.
func (a *App) ShowProfile(ctx context.Context) error {
	if !a.requireUser() {
		return nil
	}

	u := a.session.CurrentUser()
	printlnFn("Full name:", u.FullName)
	printlnFn("Email:    ", u.Email)
	printlnFn("Role:     ", string(u.Role))
	printlnFn("Joined:   ", u.CreatedAt.Format("2006-01-02"))
	if u.LastLogin != nil {
		printlnFn("Last seen:", u.LastLogin.Format("2006-01-02 15:04"))
	}
	return nil
}

// EditProfile walks the user through editing full name and email. Pressing
// Enter on a field keeps the current value. The draft is only sent when
// something was actually entered; the server response re-resolves the
// identity on success.
func (a *App) EditProfile(ctx context.Context) error {
	if !a.requireUser() {
		return nil
	}

	a.profile.Reset()
	curName, curEmail := a.profile.Draft()

	fullName, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s] (empty keeps current)", curName), os.Stdout)
	if err != nil {
		return err
	}
	if fullName != "" {
		a.profile.SetFullName(fullName)
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s] (empty keeps current)", curEmail), os.Stdout)
	if err != nil {
		return err
	}
	if email != "" {
		a.profile.SetEmail(email)
	}

	if err := a.profile.Save(ctx); err != nil {
		if errors.Is(err, services.ErrNothingToUpdate) {
			printlnFn("Nothing to update.")
		} else {
			printlnFn("Update failed:", err.Error())
		}
		return err
	}

	printlnFn("Profile updated.")
	return nil
}

// ChangePassword prompts for the current and new passwords and submits the
// change. All password buffers are wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.requireUser() {
		return nil
	}

	oldPassword, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.profile.ChangePassword(ctx, string(oldPassword), string(newPassword), string(confirm)); err != nil {
		printlnFn("Password change failed:", err.Error())
		return err
	}

	printlnFn("Password changed.")
	return nil
}
