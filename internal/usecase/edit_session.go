package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

// SessionState is the edit lifecycle of a loaded record.
type SessionState string

const (
	SessionViewing    SessionState = "viewing"
	SessionEditing    SessionState = "editing"
	SessionCommitting SessionState = "committing"
)

var (
	ErrNotEditing       = fmt.Errorf("session is not in editing state")
	ErrAlreadyEditing   = fmt.Errorf("session is already editing")
	ErrCommitInProgress = fmt.Errorf("commit is already in progress")
)

// EditSession tracks one loaded profile record and an isolated draft copy.
// Field edits touch only the draft; the loaded record changes only when a
// commit succeeds. A failed commit drops back to editing with the draft
// intact so the caller can retry without re-entering data.
type EditSession[T profile.Record[T]] struct {
	mu     sync.Mutex
	state  SessionState
	loaded T
	draft  T
}

func NewEditSession[T profile.Record[T]](loaded T) *EditSession[T] {
	return &EditSession[T]{
		state:  SessionViewing,
		loaded: loaded.Clone(),
	}
}

func (s *EditSession[T]) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// View returns the last committed record.
func (s *EditSession[T]) View() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loaded.Clone()
}

// BeginEdit snapshots the loaded record into the draft and enters editing.
func (s *EditSession[T]) BeginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case SessionEditing:
		return ErrAlreadyEditing
	case SessionCommitting:
		return ErrCommitInProgress
	}

	s.draft = s.loaded.Clone()
	s.state = SessionEditing
	return nil
}

// Mutate applies fn to the draft. The loaded record is never touched.
func (s *EditSession[T]) Mutate(fn func(draft *T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionEditing {
		return ErrNotEditing
	}

	fn(&s.draft)
	return nil
}

func (s *EditSession[T]) Draft() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionEditing {
		var zero T
		return zero, ErrNotEditing
	}

	return s.draft.Clone(), nil
}

// Commit hands the draft to commitFn. On success the committed record
// replaces the loaded one and the session returns to viewing; on failure
// the session stays in editing with the draft untouched.
func (s *EditSession[T]) Commit(ctx context.Context, commitFn func(ctx context.Context, draft T) (T, error)) (T, error) {
	s.mu.Lock()
	if s.state != SessionEditing {
		s.mu.Unlock()
		var zero T
		return zero, ErrNotEditing
	}
	s.state = SessionCommitting
	draft := s.draft.Clone()
	s.mu.Unlock()

	committed, err := commitFn(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = SessionEditing
		var zero T
		return zero, err
	}

	s.loaded = committed.Clone()
	s.state = SessionViewing
	return committed.Clone(), nil
}
