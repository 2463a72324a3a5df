package user

import (
	"context"
	"sync"
)

// AuthContext exposes the acting identity to components that need it.
// Session state is pushed explicitly, never read from globals; consumers
// observe changes through Subscribe and must release with the returned
// unsubscribe func.
type AuthContext interface {
	Current(ctx context.Context) (Principal, bool)
	Subscribe(fn func(Principal)) (unsubscribe func())
}

// Sessions is an in-process AuthContext implementation fed by the
// authentication middleware.
type Sessions struct {
	mu      sync.RWMutex
	current Principal
	active  bool
	subs    map[int]func(Principal)
	nextID  int
}

func NewSessions() *Sessions {
	return &Sessions{subs: make(map[int]func(Principal))}
}

func (s *Sessions) Current(_ context.Context) (Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.active
}

// Publish records the principal as the current session and notifies
// subscribers. Callbacks run synchronously on the publishing goroutine.
func (s *Sessions) Publish(p Principal) {
	s.mu.Lock()
	s.current = p
	s.active = true
	fns := make([]func(Principal), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Clear drops the current session without notifying subscribers.
func (s *Sessions) Clear() {
	s.mu.Lock()
	s.current = Principal{}
	s.active = false
	s.mu.Unlock()
}

func (s *Sessions) Subscribe(fn func(Principal)) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}
