package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
)

// ExperienceSession holds an isolated draft of a user's experience list.
// Entries are addressed by slice index while editing; IDs only matter at
// commit time, when the whole draft is reconciled against storage.
type ExperienceSession struct {
	mu     sync.Mutex
	state  SessionState
	loaded []experience.Experience
	draft  []experience.Experience
}

func NewExperienceSession(loaded []experience.Experience) *ExperienceSession {
	return &ExperienceSession{
		state:  SessionViewing,
		loaded: experience.CloneList(loaded),
	}
}

func (s *ExperienceSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *ExperienceSession) View() []experience.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()

	return experience.CloneList(s.loaded)
}

func (s *ExperienceSession) BeginEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case SessionEditing:
		return ErrAlreadyEditing
	case SessionCommitting:
		return ErrCommitInProgress
	}

	s.draft = experience.CloneList(s.loaded)
	s.state = SessionEditing
	return nil
}

// Add appends a blank entry to the draft and returns its index.
func (s *ExperienceSession) Add() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionEditing {
		return 0, ErrNotEditing
	}

	s.draft = append(s.draft, experience.Experience{})
	return len(s.draft) - 1, nil
}

// Update applies fn to the draft entry at index.
func (s *ExperienceSession) Update(index int, fn func(entry *experience.Experience)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionEditing {
		return ErrNotEditing
	}
	if index < 0 || index >= len(s.draft) {
		return fmt.Errorf("%w: experience index %d out of range", ErrInvalidInput, index)
	}

	fn(&s.draft[index])
	return nil
}

// Remove drops the draft entry at index; later entries shift down.
func (s *ExperienceSession) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionEditing {
		return ErrNotEditing
	}
	if index < 0 || index >= len(s.draft) {
		return fmt.Errorf("%w: experience index %d out of range", ErrInvalidInput, index)
	}

	s.draft = append(s.draft[:index], s.draft[index+1:]...)
	return nil
}

func (s *ExperienceSession) Draft() ([]experience.Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionEditing {
		return nil, ErrNotEditing
	}

	return experience.CloneList(s.draft), nil
}

// Commit hands the draft to commitFn, typically ExperienceService.Commit.
// A failed commit keeps the draft so the caller can fix it and retry.
func (s *ExperienceSession) Commit(ctx context.Context, commitFn func(ctx context.Context, draft []experience.Experience) ([]experience.Experience, error)) ([]experience.Experience, error) {
	s.mu.Lock()
	if s.state != SessionEditing {
		s.mu.Unlock()
		return nil, ErrNotEditing
	}
	s.state = SessionCommitting
	draft := experience.CloneList(s.draft)
	s.mu.Unlock()

	committed, err := commitFn(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = SessionEditing
		return nil, err
	}

	s.loaded = experience.CloneList(committed)
	s.state = SessionViewing
	return experience.CloneList(committed), nil
}
