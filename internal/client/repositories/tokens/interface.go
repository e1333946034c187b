// Package tokens stores the access/refresh token pair between runs.
// The store is plain persistence: it never inspects token contents and is
// not a security boundary on its own.
package tokens

import "context"

// Repository persists the current token pair.
//
// Contract:
//   - Save replaces both tokens atomically.
//   - Clear removes both tokens atomically; clearing an empty store is not
//     an error.
//   - Access/Refresh return an empty string when no token is stored.
type Repository interface {
	Save(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
	HasAccess(ctx context.Context) (bool, error)
}
