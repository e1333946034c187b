// Package guard holds the single authorization predicate every protected
// entry point consults. It is a pure decision function over a session
// snapshot; it keeps no state and performs no IO, so it can be re-evaluated
// on every navigation and session change.
package guard

import "github.com/userdesk/userdesk/internal/client/models"

// Role is the access level an entry point requires.
type Role int

const (
	RoleNone Role = iota
	RoleUser
	RoleAdmin
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Pending: identity resolution has not finished yet; show a loading
	// placeholder and do not redirect.
	Pending Decision = iota
	// Allow: render the protected content.
	Allow
	// RedirectLogin: no identity; send the user to the login flow.
	RedirectLogin
	// RedirectProfile: authenticated but lacking the admin role.
	RedirectProfile
)

// Authorize maps (session, required role) to a decision. Rules, in order:
// a booting session is Pending; an anonymous session redirects to login; a
// non-admin hitting an admin-only entry redirects to the profile; anything
// else is allowed.
func Authorize(s models.Session, required Role) Decision {
	if s.BootState == models.BootBooting {
		return Pending
	}
	if s.Identity == nil {
		return RedirectLogin
	}
	if required == RoleAdmin && s.Identity.Role != models.RoleAdmin {
		return RedirectProfile
	}
	return Allow
}
