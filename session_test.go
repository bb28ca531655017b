package backoffice_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	backoffice "github.com/bookhaven/go-backoffice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const principalBody = `{
	"id": 1,
	"username": "admin",
	"real_name": "Store Admin",
	"employee_id": "EMP001",
	"gender": "female",
	"age": 34,
	"role": "admin",
	"is_super_admin": false
}`

func TestBootstrapWithoutStoredCredential(t *testing.T) {
	var calls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	stack := newTestStack(t, "/dashboard", handler)

	assert.Equal(t, backoffice.StateBootstrapping, stack.session.State())
	assert.True(t, stack.session.IsLoading())

	stack.session.Bootstrap(context.Background())

	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	assert.False(t, stack.session.IsLoading())
	assert.Nil(t, stack.session.Principal())
	assert.EqualValues(t, 0, calls.Load(), "no backend call without a credential")
}

func TestBootstrapWithExpiredCredential(t *testing.T) {
	var calls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	stack := newTestStack(t, "/dashboard", handler)
	require.NoError(t, stack.store.Save(mintToken(t, "1", time.Now().Add(-time.Hour))))

	stack.session.Bootstrap(context.Background())

	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	assert.False(t, stack.session.IsLoading())
	_, ok := stack.store.Load()
	assert.False(t, ok, "expired credential must be discarded")
	assert.EqualValues(t, 0, calls.Load())
}

func TestBootstrapWithMalformedCredential(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	stack := newTestStack(t, "/dashboard", handler)
	require.NoError(t, stack.store.Save("garbage-not-a-jwt"))

	stack.session.Bootstrap(context.Background())

	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	_, ok := stack.store.Load()
	assert.False(t, ok)
}

func TestBootstrapWithValidCredential(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/me", r.URL.Path)
		jsonResponse(w, http.StatusOK, principalBody)
	})

	stack := newTestStack(t, "/dashboard", handler)
	require.NoError(t, stack.store.Save(mintToken(t, "1", time.Now().Add(time.Hour))))

	stack.session.Bootstrap(context.Background())

	assert.Equal(t, backoffice.StateAuthenticated, stack.session.State())
	assert.False(t, stack.session.IsLoading())

	principal := stack.session.Principal()
	require.NotNil(t, principal)
	assert.Equal(t, "admin", principal.Username)
	assert.Equal(t, "Store Admin", principal.RealName)
	assert.False(t, principal.IsSuperAdmin)
}

func TestBootstrapWhenPrincipalFetchIsRejected(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, `{"message":"Token has been revoked"}`)
	})

	stack := newTestStack(t, "/dashboard", handler)
	require.NoError(t, stack.store.Save(mintToken(t, "1", time.Now().Add(time.Hour))))

	stack.session.Bootstrap(context.Background())

	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	assert.False(t, stack.session.IsLoading())
	_, ok := stack.store.Load()
	assert.False(t, ok)
}

func TestBootstrapWhenBackendIsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	stack := newTestStack(t, "/dashboard", handler)
	require.NoError(t, stack.store.Save(mintToken(t, "1", time.Now().Add(time.Hour))))
	stack.server.Close()

	stack.session.Bootstrap(context.Background())

	// Never fatal: the app comes up signed out.
	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	assert.False(t, stack.session.IsLoading())
}

func TestBootstrapRunsOnce(t *testing.T) {
	var calls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		jsonResponse(w, http.StatusOK, principalBody)
	})

	stack := newTestStack(t, "/dashboard", handler)
	require.NoError(t, stack.store.Save(mintToken(t, "1", time.Now().Add(time.Hour))))

	stack.session.Bootstrap(context.Background())
	stack.session.Bootstrap(context.Background())

	assert.EqualValues(t, 1, calls.Load())
}

func TestLoginFailurePreservesState(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusUnauthorized, `{"message":"Invalid username or password"}`)
	})

	stack := newTestStack(t, backoffice.LoginPath, handler)
	stack.session.Bootstrap(context.Background())

	result := stack.session.Login(context.Background(), "admin", "wrongpass")

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid username or password", result.Message)
	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	_, ok := stack.store.Load()
	assert.False(t, ok)
}

func TestLoginFailureFallbackMessage(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	stack := newTestStack(t, backoffice.LoginPath, handler)
	stack.session.Bootstrap(context.Background())

	result := stack.session.Login(context.Background(), "admin", "pass")

	assert.False(t, result.Success)
	assert.Equal(t, "Login failed. Please try again.", result.Message)
}

func TestLoginSuccess(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		jsonResponse(w, http.StatusOK, `{"token":"T","user":`+principalBody+`}`)
	})

	stack := newTestStack(t, backoffice.LoginPath, handler)
	stack.session.Bootstrap(context.Background())

	result := stack.session.Login(context.Background(), "admin", "correctpass")

	require.True(t, result.Success)
	assert.Equal(t, backoffice.StateAuthenticated, stack.session.State())

	token, ok := stack.store.Load()
	assert.True(t, ok)
	assert.Equal(t, "T", token)

	require.NotEmpty(t, stack.nav.History)
	assert.Equal(t, backoffice.DashboardPath, stack.nav.History[len(stack.nav.History)-1])
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	var calls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	stack := newTestStack(t, backoffice.LoginPath, handler)
	stack.session.Bootstrap(context.Background())

	result := stack.session.Login(context.Background(), "", "")

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.EqualValues(t, 0, calls.Load())
}

func TestLogoutIsIdempotent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{"token":"T","user":`+principalBody+`}`)
	})

	stack := newTestStack(t, backoffice.LoginPath, handler)
	stack.session.Bootstrap(context.Background())
	require.True(t, stack.session.Login(context.Background(), "admin", "pass").Success)

	stack.session.Logout()
	stack.session.Logout()

	assert.Equal(t, backoffice.StateUnauthenticated, stack.session.State())
	assert.Nil(t, stack.session.Principal())
	_, ok := stack.store.Load()
	assert.False(t, ok)

	// Apart from re-signalling navigation, the second call changed nothing.
	assert.Equal(t, backoffice.LoginPath, stack.nav.CurrentPath())
}

func TestUpdatePrincipal(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, `{"token":"T","user":`+principalBody+`}`)
	})

	stack := newTestStack(t, backoffice.LoginPath, handler)
	stack.session.Bootstrap(context.Background())

	t.Run("no-op without principal", func(t *testing.T) {
		stack.session.UpdatePrincipal(backoffice.UpdateProfileRequest{RealName: "Nobody"})
		assert.Nil(t, stack.session.Principal())
	})

	require.True(t, stack.session.Login(context.Background(), "admin", "pass").Success)

	t.Run("merges only the provided fields", func(t *testing.T) {
		stack.session.UpdatePrincipal(backoffice.UpdateProfileRequest{RealName: "Renamed", Age: 35})

		principal := stack.session.Principal()
		require.NotNil(t, principal)
		assert.Equal(t, "Renamed", principal.RealName)
		assert.Equal(t, 35, principal.Age)
		assert.Equal(t, "female", principal.Gender, "unset fields stay put")
		assert.Equal(t, "admin", principal.Username)
	})
}
