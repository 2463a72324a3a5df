package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

// ProfileRepository keeps one profile record per user in memory. It backs
// tests and local runs without a database.
type ProfileRepository[T profile.Record[T]] struct {
	mu      sync.RWMutex
	items   map[string]T
	created map[string]time.Time
	now     func() time.Time

	stamp func(record T, createdAt, updatedAt time.Time) T
}

func NewPlayerProfileRepository() *ProfileRepository[profile.PlayerProfile] {
	return &ProfileRepository[profile.PlayerProfile]{
		items:   make(map[string]profile.PlayerProfile),
		created: make(map[string]time.Time),
		now:     time.Now,
		stamp: func(record profile.PlayerProfile, createdAt, updatedAt time.Time) profile.PlayerProfile {
			record.CreatedAt = createdAt
			record.UpdatedAt = updatedAt
			return record
		},
	}
}

func NewScoutProfileRepository() *ProfileRepository[profile.ScoutProfile] {
	return &ProfileRepository[profile.ScoutProfile]{
		items:   make(map[string]profile.ScoutProfile),
		created: make(map[string]time.Time),
		now:     time.Now,
		stamp: func(record profile.ScoutProfile, createdAt, updatedAt time.Time) profile.ScoutProfile {
			record.CreatedAt = createdAt
			record.UpdatedAt = updatedAt
			return record
		},
	}
}

func (r *ProfileRepository[T]) GetByUserID(_ context.Context, userID string) (T, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[userID]
	if !ok {
		var zero T
		return zero, false, nil
	}

	return record.Clone(), true, nil
}

// Insert stores the record unless a row for the same user already exists,
// in which case the stored row wins and is returned unchanged.
func (r *ProfileRepository[T]) Insert(_ context.Context, record T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[record.Owner()]; ok {
		return existing.Clone(), nil
	}

	now := r.now()
	stored := r.stamp(record.Clone(), now, now)
	r.items[record.Owner()] = stored
	r.created[record.Owner()] = now

	return stored.Clone(), nil
}

func (r *ProfileRepository[T]) Update(_ context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[record.Owner()]; !ok {
		return nil
	}

	r.items[record.Owner()] = r.stamp(record.Clone(), r.created[record.Owner()], r.now())

	return nil
}

func (r *ProfileRepository[T]) List(_ context.Context, limit int) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userIDs := make([]string, 0, len(r.items))
	for userID := range r.items {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	if limit > 0 && limit < len(userIDs) {
		userIDs = userIDs[:limit]
	}

	out := make([]T, 0, len(userIDs))
	for _, userID := range userIDs {
		out = append(out, r.items[userID].Clone())
	}

	return out, nil
}
