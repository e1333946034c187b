package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// TokenSource yields the current access token, or an empty string when the
// client is anonymous. The token repository satisfies this interface.
type TokenSource interface {
	Access(ctx context.Context) (string, error)
}

// publicPaths are the endpoints that must never carry a bearer credential,
// with and without the trailing slash.
var publicPaths = []string{
	"/api/auth/login/",
	"/api/auth/signup/",
	"/api/auth/login",
	"/api/auth/signup",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// authTransport is the outbound gateway. Before a request leaves the
// process it strips the Authorization header on public endpoints, attaches
// the stored bearer token everywhere else, and stamps an X-Request-Id for
// log correlation. No refresh or retry logic lives here.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-Id", uuid.NewString())

	if isPublicPath(req.URL.Path) {
		req.Header.Del("Authorization")
		return t.base.RoundTrip(req)
	}

	token, err := t.tokens.Access(req.Context())
	if err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return t.base.RoundTrip(req)
}
