package backoffice

import (
	"context"
	"sync"
	"time"
)

// SessionState identifies where the controller is in its lifecycle. The
// controller starts in Bootstrapping and never re-enters it.
type SessionState string

const (
	StateBootstrapping   SessionState = "bootstrapping"
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
)

// SessionSnapshot is the immutable view of session state that the route guard
// and the view layer consume.
type SessionSnapshot struct {
	State     SessionState
	Loading   bool
	Principal *Principal
}

// LoginResult reports the outcome of a login attempt. Message is displayable
// to the user; the server-supplied message is preferred when present.
type LoginResult struct {
	Success bool
	Message string
}

// SessionController owns the credential lifecycle: it validates any stored
// credential at startup, exchanges username/password for a new one, and tears
// the session down on logout or rejection. Construct exactly one per process
// and inject it into the view layer; there is no ambient singleton.
type SessionController struct {
	client *Client
	store  TokenStore
	nav    Navigator
	logger Logger
	now    func() time.Time

	mu           sync.Mutex
	state        SessionState
	principal    *Principal
	loading      bool
	bootstrapped bool
}

func NewSessionController(client *Client, store TokenStore, nav Navigator) *SessionController {
	return &SessionController{
		client:  client,
		store:   store,
		nav:     nav,
		logger:  defLogger{},
		now:     time.Now,
		state:   StateBootstrapping,
		loading: true,
	}
}

func (s *SessionController) WithLogger(logger Logger) *SessionController {
	s.logger = logger
	return s
}

// WithClock overrides the time source used for expiry checks.
func (s *SessionController) WithClock(now func() time.Time) *SessionController {
	s.now = now
	return s
}

// Bootstrap validates any previously stored credential and resolves the
// controller out of the bootstrapping state. Invoked once at startup; repeat
// calls are no-ops. Every branch terminates in a usable state: backend or
// storage trouble means unauthenticated, never a failed application.
func (s *SessionController) Bootstrap(ctx context.Context) {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return
	}
	s.bootstrapped = true
	s.mu.Unlock()

	token, ok := s.store.Load()
	if !ok {
		s.settle(StateUnauthenticated, nil)
		return
	}

	claims, err := DecodeToken(token)
	if err != nil {
		s.logger.Info("stored credential is malformed, discarding")
		s.discardCredential()
		s.settle(StateUnauthenticated, nil)
		return
	}

	if err := claims.CheckAt(s.now()); err != nil {
		s.logger.Info("stored credential is expired, discarding")
		s.discardCredential()
		s.settle(StateUnauthenticated, nil)
		return
	}

	principal, err := s.fetchPrincipal(ctx)
	if err != nil {
		s.logger.Error("principal fetch failed during bootstrap: %v", err)
		s.discardCredential()
		s.settle(StateUnauthenticated, nil)
		return
	}

	s.settle(StateAuthenticated, principal)
}

// Login exchanges credentials for a bearer token. Failures are reported in the
// result, never raised; session state is untouched on failure. On success the
// credential is persisted, the principal set, and navigation to the default
// authenticated view signalled.
func (s *SessionController) Login(ctx context.Context, username, password string) LoginResult {
	payload := LoginRequest{Username: username, Password: password}
	if err := payload.Validate(); err != nil {
		return LoginResult{Message: err.Error()}
	}

	var resp loginResponse
	if err := s.client.Post(ctx, "/api/auth/login", payload, &resp); err != nil {
		s.logger.Error("login failed: %v", err)
		return LoginResult{Message: ServerMessage(err, "Login failed. Please try again.")}
	}

	if err := s.store.Save(resp.Token); err != nil {
		s.logger.Error("persist credential: %v", err)
		return LoginResult{Message: "Login failed. Please try again."}
	}

	user := resp.User
	s.mu.Lock()
	s.state = StateAuthenticated
	s.principal = &user
	s.loading = false
	s.mu.Unlock()

	s.nav.NavigateTo(DashboardPath)
	return LoginResult{Success: true}
}

// Logout clears the credential and principal and signals navigation to the
// login view. Calling it while already unauthenticated only re-signals the
// navigation.
func (s *SessionController) Logout() {
	s.discardCredential()

	s.mu.Lock()
	s.state = StateUnauthenticated
	s.principal = nil
	s.loading = false
	s.mu.Unlock()

	s.nav.NavigateTo(LoginPath)
}

// UpdatePrincipal merges profile fields already confirmed by the backend into
// the current principal without another round trip. No-op while there is no
// principal.
func (s *SessionController) UpdatePrincipal(update UpdateProfileRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return
	}
	if update.RealName != "" {
		s.principal.RealName = update.RealName
	}
	if update.Gender != "" {
		s.principal.Gender = update.Gender
	}
	if update.Age != 0 {
		s.principal.Age = update.Age
	}
}

// Snapshot returns the current session state for guards and views.
func (s *SessionController) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SessionSnapshot{State: s.state, Loading: s.loading}
	if s.principal != nil {
		p := *s.principal
		snap.Principal = &p
	}
	return snap
}

// State returns the current lifecycle state.
func (s *SessionController) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Principal returns a copy of the authenticated principal, nil when there is none.
func (s *SessionController) Principal() *Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return nil
	}
	p := *s.principal
	return &p
}

// IsAuthenticated reports whether the session holds a usable credential.
func (s *SessionController) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// IsLoading is true only while the initial bootstrap is in flight.
func (s *SessionController) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SessionController) fetchPrincipal(ctx context.Context) (*Principal, error) {
	var p Principal
	if err := s.client.Get(ctx, "/api/auth/me", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SessionController) settle(state SessionState, p *Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.principal = p
	s.loading = false
}

func (s *SessionController) discardCredential() {
	if err := s.store.Clear(); err != nil {
		s.logger.Error("clear credential: %v", err)
	}
}
