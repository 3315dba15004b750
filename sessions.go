package portfolio

import (
	"sync"
	"time"

	"github.com/isaac-munyaka/portfolio/lightbox"
)

// LightboxSessions gives every browser session its own lightbox controller.
// Controllers live in memory only; a restart closes every lightbox.
type LightboxSessions struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	idle    time.Duration
	now     func() time.Time
}

type sessionEntry struct {
	ctrl     *lightbox.Controller
	lastSeen time.Time
}

// NewLightboxSessions creates a registry that forgets sessions idle for longer than idle.
func NewLightboxSessions(idle time.Duration) *LightboxSessions {
	return &LightboxSessions{
		entries: make(map[string]*sessionEntry),
		idle:    idle,
		now:     time.Now,
	}
}

// Get returns the controller for id, creating a closed one if needed.
func (s *LightboxSessions) Get(id string) *lightbox.Controller {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &sessionEntry{ctrl: lightbox.New()}
		s.entries[id] = e
	}
	e.lastSeen = s.now()
	return e.ctrl
}

// Lookup returns the controller for id without creating one.
func (s *LightboxSessions) Lookup(id string) (*lightbox.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.ctrl, true
}

// Forget drops the controller for id.
func (s *LightboxSessions) Forget(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of tracked sessions.
func (s *LightboxSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes sessions not seen since now minus the idle timeout and
// returns how many were removed.
func (s *LightboxSessions) Sweep(now time.Time) int {
	cutoff := now.Add(-s.idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until the returned stop func is called.
func (s *LightboxSessions) StartSweeper(interval time.Duration) (stop func()) {
	done := make(chan struct{})
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(s.now())
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
