package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const (
	// refreshThreshold is the lead time before expiry at which the token
	// is proactively exchanged. The margin absorbs network latency and
	// clock skew between client and server, so a request in flight does
	// not cross the expiry boundary mid-flight.
	refreshThreshold = 30 * time.Second

	authenticatePath = "/_/auth/authenticate"
	refreshPath      = "/_/auth/refresh"
)

// Credentials is the transient input to Login. It is never stored.
type Credentials struct {
	Email       string
	Password    string
	URL         string
	Environment string
	// Persist requests automatic background refresh for the lifetime of
	// the session, as opposed to a one-shot authenticated call.
	Persist bool
}

// LoginResult reflects the post-login session state.
type LoginResult struct {
	URL         string `json:"url"`
	Environment string `json:"environment"`
	Token       string `json:"token"`
}

// Option configures a Manager.
type Option func(*Manager)

// WithNow sets the clock used for the refresh threshold decision
// (primarily for testing).
func WithNow(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithRefreshInterval overrides the scheduler tick period (primarily for
// testing).
func WithRefreshInterval(d time.Duration) Option {
	return func(m *Manager) {
		m.interval = d
	}
}

// Manager orchestrates login, logout, manual refresh, and conditional
// background refresh against the session state and the transport. It
// holds exclusive write access to the session; everything else reads a
// copy via Session.
type Manager struct {
	transport Transport

	mu      sync.Mutex
	session Session
	// generation is bumped whenever the session is replaced or cleared.
	// An in-flight refresh result is discarded if the generation moved
	// while the exchange was pending, so a logged-out session cannot be
	// resurrected by a late response.
	generation uint64

	onAutoRefreshError func(error)

	sched    *Scheduler
	interval time.Duration
	now      func() time.Time
}

// NewManager creates a Manager bound to the given transport. baseURL is
// the initial API endpoint; Login may overwrite it.
func NewManager(transport Transport, baseURL string, opts ...Option) *Manager {
	m := &Manager{
		transport: transport,
		session:   Session{BaseURL: baseURL},
		interval:  DefaultRefreshInterval,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.sched = NewScheduler(m.interval, func() {
		m.RefreshIfNeeded(context.Background())
	})
	return m
}

// Session returns a copy of the current session state.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// OnAutoRefreshError registers a handler for background refresh
// failures. Manual Refresh failures propagate to the caller instead and
// never reach the handler. A nil handler silently drops the errors.
func (m *Manager) OnAutoRefreshError(fn func(error)) {
	m.mu.Lock()
	m.onAutoRefreshError = fn
	m.mu.Unlock()
}

// Login validates the credentials, authenticates against the API, and
// stores the returned token. If creds.URL or creds.Environment are set
// they overwrite the session's values before the request is issued. With
// creds.Persist the refresh scheduler is started; without it the
// scheduler's current state is left untouched, so repeated one-shot
// logins do not kill an existing auto-refresh loop. Transport failures
// propagate to the caller unmodified.
func (m *Manager) Login(ctx context.Context, creds *Credentials) (*LoginResult, error) {
	if creds == nil {
		return nil, &ParameterError{Op: "login", Name: "credentials"}
	}
	if creds.Email == "" {
		return nil, &ParameterError{Op: "login", Name: "email"}
	}
	if creds.Password == "" {
		return nil, &ParameterError{Op: "login", Name: "password"}
	}

	m.mu.Lock()
	if creds.URL != "" {
		m.session.BaseURL = creds.URL
	}
	if creds.Environment != "" {
		m.session.Environment = creds.Environment
	}
	baseURL := m.session.BaseURL
	m.mu.Unlock()

	resp, err := m.transport.Execute(ctx, Request{
		Method:  http.MethodPost,
		Path:    authenticatePath,
		BaseURL: baseURL,
		Body:    map[string]string{"email": creds.Email, "password": creds.Password},
	})
	if err != nil {
		return nil, err
	}

	token, err := TokenFromResponse(resp)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.session.Token = token
	m.generation++
	result := &LoginResult{
		URL:         m.session.BaseURL,
		Environment: m.session.Environment,
		Token:       token,
	}
	m.mu.Unlock()

	if creds.Persist {
		m.sched.Start()
	}
	return result, nil
}

// Logout stops the refresh scheduler and clears the session. It is
// synchronous, makes no transport call, and is idempotent: logging out
// an already logged-out session is a no-op with the same end state.
func (m *Manager) Logout() {
	m.sched.Stop()
	m.mu.Lock()
	m.session = Session{}
	m.generation++
	m.mu.Unlock()
}

// Refresh exchanges currentToken for a new one and returns the raw
// transport response. It is a pure exchange primitive: the session is
// not mutated, and extracting the new token from the response (see
// TokenFromResponse) is the caller's responsibility.
func (m *Manager) Refresh(ctx context.Context, currentToken string) (*Response, error) {
	if currentToken == "" {
		return nil, &ParameterError{Op: "refresh", Name: "token"}
	}
	m.mu.Lock()
	baseURL := m.session.BaseURL
	m.mu.Unlock()
	return m.transport.Execute(ctx, Request{
		Method:  http.MethodPost,
		Path:    refreshPath,
		BaseURL: baseURL,
		Body:    map[string]string{"token": currentToken},
	})
}

// RefreshIfNeeded exchanges the session token when it is within 30
// seconds of expiry. It is invoked both manually and by the scheduler.
// It is a no-op while the session is incomplete, while the token carries
// no expiry claim, or while the token is still comfortably valid. A
// failed exchange keeps the old token and routes the error to the
// OnAutoRefreshError handler; it never escapes, so the repeating timer
// cannot die on a transient failure.
func (m *Manager) RefreshIfNeeded(ctx context.Context) {
	m.mu.Lock()
	token := m.session.Token
	baseURL := m.session.BaseURL
	environment := m.session.Environment
	gen := m.generation
	m.mu.Unlock()

	if token == "" || baseURL == "" || environment == "" {
		return
	}
	claims := DecodeClaims(token)
	if claims.ExpiresAt.IsZero() {
		return
	}
	if claims.ExpiresAt.Sub(m.now()) > refreshThreshold {
		return
	}

	resp, err := m.Refresh(ctx, token)
	if err != nil {
		m.reportAutoRefreshError(err)
		return
	}
	newToken, err := TokenFromResponse(resp)
	if err != nil {
		m.reportAutoRefreshError(err)
		return
	}

	m.mu.Lock()
	// Discard the result if the session was logged out or replaced
	// while the exchange was in flight.
	if m.generation == gen {
		m.session.Token = newToken
	}
	m.mu.Unlock()
}

// StartAutoRefresh starts the background refresh scheduler. Idempotent.
func (m *Manager) StartAutoRefresh() {
	m.sched.Start()
}

// StopAutoRefresh stops the background refresh scheduler. Idempotent.
func (m *Manager) StopAutoRefresh() {
	m.sched.Stop()
}

// AutoRefreshing reports whether the refresh scheduler is running.
func (m *Manager) AutoRefreshing() bool {
	return m.sched.Running()
}

func (m *Manager) reportAutoRefreshError(err error) {
	m.mu.Lock()
	fn := m.onAutoRefreshError
	m.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

// tokenEnvelope is the conventional {"data": {"token": ...}} response
// shape of the authenticate and refresh endpoints.
type tokenEnvelope struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

// TokenFromResponse extracts the new token from an authenticate or
// refresh response. Any shape mismatch is ErrMalformedResponse.
func TokenFromResponse(resp *Response) (string, error) {
	if resp == nil {
		return "", ErrMalformedResponse
	}
	var envelope tokenEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return "", ErrMalformedResponse
	}
	if envelope.Data.Token == "" {
		return "", ErrMalformedResponse
	}
	return envelope.Data.Token, nil
}
