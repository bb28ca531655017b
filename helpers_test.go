package backoffice_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	backoffice "github.com/bookhaven/go-backoffice"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// mintToken signs a token the way the backend would. The client never checks
// the signature, only the embedded claims.
func mintToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

// testStack bundles the collaborators most tests need.
type testStack struct {
	store   *backoffice.MemoryTokenStore
	nav     *backoffice.MemoryNavigator
	client  *backoffice.Client
	session *backoffice.SessionController
	server  *httptest.Server
}

// newTestStack wires a client and session controller against an httptest
// backend, starting navigation from the given view path.
func newTestStack(t *testing.T, startPath string, handler http.Handler) *testStack {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := backoffice.NewMemoryTokenStore()
	nav := backoffice.NewMemoryNavigator(startPath)

	cfg := &backoffice.Config{
		APIURL:         server.URL,
		RequestTimeout: 5 * time.Second,
	}

	client, err := backoffice.NewClient(cfg, store, nav)
	require.NoError(t, err)

	session := backoffice.NewSessionController(client, store, nav)

	return &testStack{
		store:   store,
		nav:     nav,
		client:  client,
		session: session,
		server:  server,
	}
}

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
