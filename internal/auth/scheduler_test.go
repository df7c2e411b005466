package auth

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_FirstTickAfterOneInterval(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(100*time.Millisecond, func() { ticks.Add(1) })
	s.Start()
	defer s.Stop()

	// Well before one full interval nothing may have fired.
	time.Sleep(20 * time.Millisecond)
	if got := ticks.Load(); got != 0 {
		t.Errorf("Expected no tick before the first interval elapsed, got %d", got)
	}
}

func TestScheduler_StartIsIdempotent(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(50*time.Millisecond, func() { ticks.Add(1) })
	s.Start()
	s.Start()
	s.Start()
	defer s.Stop()

	// A single timer fires twice in 125ms; a leaked second timer would
	// roughly double that.
	time.Sleep(125 * time.Millisecond)
	got := ticks.Load()
	if got < 1 || got > 3 {
		t.Errorf("Expected 1-3 ticks from a single timer, got %d", got)
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(20*time.Millisecond, func() { ticks.Add(1) })

	// Stopping a never-started scheduler is a no-op.
	s.Stop()

	s.Start()
	s.Stop()
	s.Stop()

	if s.Running() {
		t.Error("Expected scheduler stopped")
	}

	counted := ticks.Load()
	time.Sleep(60 * time.Millisecond)
	if got := ticks.Load(); got != counted {
		t.Errorf("Expected no ticks after Stop, got %d more", got-counted)
	}
}

func TestScheduler_RestartAfterStop(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(20*time.Millisecond, func() { ticks.Add(1) })
	s.Start()
	s.Stop()
	s.Start()
	defer s.Stop()

	waitFor(t, time.Second, func() bool { return ticks.Load() >= 1 })
}

func TestManager_PersistLoginDrivesPeriodicRefresh(t *testing.T) {
	var refreshes atomic.Int64
	transport := &fakeTransport{}
	m := NewManager(transport, "https://api.strata.dev", WithRefreshInterval(20*time.Millisecond))

	// Every response hands back a token that is itself near expiry, so
	// each tick triggers another exchange.
	transport.respond = func(req Request) (*Response, error) {
		if req.Path == "/_/auth/refresh" {
			refreshes.Add(1)
		}
		return tokenResponse(signedToken(t, 10*time.Second)), nil
	}

	_, err := m.Login(context.Background(), &Credentials{
		Email:       "a@b.c",
		Password:    "p",
		Environment: "production",
		Persist:     true,
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	defer m.Logout()

	if !m.AutoRefreshing() {
		t.Fatal("Expected scheduler running after persist login")
	}
	waitFor(t, 2*time.Second, func() bool { return refreshes.Load() >= 2 })
}

func TestManager_LoginWithoutPersistLeavesSchedulerAlone(t *testing.T) {
	transport := &fakeTransport{}
	m := NewManager(transport, "https://api.strata.dev", WithRefreshInterval(time.Hour))

	if _, err := m.Login(context.Background(), &Credentials{Email: "a@b.c", Password: "p"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if m.AutoRefreshing() {
		t.Error("Expected no scheduler after non-persist login")
	}

	// A persist login starts the loop; later one-shot logins must not
	// kill it.
	if _, err := m.Login(context.Background(), &Credentials{Email: "a@b.c", Password: "p", Persist: true}); err != nil {
		t.Fatalf("Persist login failed: %v", err)
	}
	if _, err := m.Login(context.Background(), &Credentials{Email: "a@b.c", Password: "p"}); err != nil {
		t.Fatalf("Second one-shot login failed: %v", err)
	}
	if !m.AutoRefreshing() {
		t.Error("Expected scheduler still running after non-persist login")
	}
	m.Logout()
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, deadline time.Duration, cond func() bool) {
	t.Helper()
	stop := time.Now().Add(deadline)
	for time.Now().Before(stop) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Condition not met before deadline")
}
