package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userdesk/userdesk/internal/client/models"
)

func TestLogin_Success(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"ann@x.io"}, [][]byte{[]byte("secret")})

	f := &fakeSessionSvc{
		state:     models.BootResolved,
		loginUser: &models.User{Email: "ann@x.io", Role: models.RoleUser},
	}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "ann@x.io", f.loginGotEmail)
	assert.Equal(t, "secret", f.loginGotPass)
}

func TestLogin_AdminHintDoesNotFail(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"root@x.io"}, [][]byte{[]byte("secret")})

	f := &fakeSessionSvc{
		state:     models.BootResolved,
		loginUser: &models.User{Email: "root@x.io", Role: models.RoleAdmin},
	}
	a := &App{session: f}

	require.NoError(t, a.Login(context.Background()))
}

func TestLogin_FailurePropagates(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"ann@x.io"}, [][]byte{[]byte("wrong")})

	f := &fakeSessionSvc{loginErr: errors.New("invalid credentials")}
	a := &App{session: f}

	err := a.Login(context.Background())
	require.Error(t, err)
}

func TestSignup_PassesAllFields(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"Ann Lee", "ann@x.io"},
		[][]byte{[]byte("NewPass1!"), []byte("NewPass1!")},
	)

	f := &fakeSessionSvc{}
	a := &App{session: f}

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, [4]string{"Ann Lee", "ann@x.io", "NewPass1!", "NewPass1!"}, f.signupGot)
}

func TestSignup_ServiceErrorPropagates(t *testing.T) {
	silencePrintln(t)
	stubInputs(t,
		[]string{"Ann Lee", "ann@x.io"},
		[][]byte{[]byte("weak"), []byte("weak")},
	)

	f := &fakeSessionSvc{signupErr: errors.New("password too weak")}
	a := &App{session: f}

	require.Error(t, a.Signup(context.Background()))
}

func TestLogout(t *testing.T) {
	silencePrintln(t)

	f := &fakeSessionSvc{state: models.BootResolved, user: &models.User{Email: "ann@x.io"}}
	a := &App{session: f}

	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, 1, f.logoutCalls)
	assert.Nil(t, f.user)
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	silencePrintln(t)

	a := &App{session: &fakeSessionSvc{state: models.BootResolved}}
	require.NoError(t, a.Whoami(context.Background()))
}

func TestRequireUser(t *testing.T) {
	tests := []struct {
		name    string
		state   models.BootState
		user    *models.User
		allowed bool
	}{
		{"booting", models.BootBooting, nil, false},
		{"booting with stale identity", models.BootBooting, &models.User{Email: "ann@x.io"}, false},
		{"anonymous", models.BootResolved, nil, false},
		{"authenticated user", models.BootResolved, &models.User{Email: "ann@x.io", Role: models.RoleUser}, true},
		{"authenticated admin", models.BootResolved, &models.User{Email: "root@x.io", Role: models.RoleAdmin}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			silencePrintln(t)
			a := &App{session: &fakeSessionSvc{state: tt.state, user: tt.user}}
			assert.Equal(t, tt.allowed, a.requireUser())
		})
	}
}

func TestWhoami_BootingSessionDeferred(t *testing.T) {
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	a := &App{session: &fakeSessionSvc{state: models.BootBooting, user: &models.User{Email: "ann@x.io"}}}
	require.NoError(t, a.Whoami(context.Background()))

	out := strings.Join(lines, "")
	assert.Contains(t, out, "resolving")
	assert.NotContains(t, out, "ann@x.io", "identity must not leak before the session resolves")
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{"anonymous", nil, ""},
		{"plain user", &models.User{Email: "ann@x.io", Role: models.RoleUser}, "(ann@x.io)"},
		{"admin", &models.User{Email: "root@x.io", Role: models.RoleAdmin}, "(root@x.io admin)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{session: &fakeSessionSvc{state: models.BootResolved, user: tt.user}}
			assert.Equal(t, tt.want, a.getStatus())
		})
	}
}
