package models

// BootState tells whether the client has finished resolving its identity
// after start-up. Authorization decisions made while still Booting must not
// redirect anywhere.
type BootState int

const (
	BootBooting BootState = iota
	BootResolved
)

// Session is a snapshot of the current identity state. A Resolved session
// with a nil Identity is anonymous.
type Session struct {
	BootState BootState
	Identity  *User
}

// Authenticated reports whether the session has a resolved identity.
func (s Session) Authenticated() bool {
	return s.BootState == BootResolved && s.Identity != nil
}
