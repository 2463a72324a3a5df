package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/reconcile"
)

type ExperienceRepository struct {
	mu     sync.RWMutex
	byUser map[string]map[string]experience.Experience
	now    func() time.Time
}

func NewExperienceRepository() *ExperienceRepository {
	return &ExperienceRepository{
		byUser: make(map[string]map[string]experience.Experience),
		now:    time.Now,
	}
}

func (r *ExperienceRepository) ListByUser(_ context.Context, userID string) ([]experience.Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byUser[userID]
	out := make([]experience.Experience, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder < out[j].SortOrder
	})

	return out, nil
}

// Reconcile applies the whole plan under one lock, mirroring the
// all-or-nothing transaction of the database implementation.
func (r *ExperienceRepository) Reconcile(_ context.Context, userID string, plan reconcile.Plan[experience.Experience]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := r.byUser[userID]
	if rows == nil {
		rows = make(map[string]experience.Experience)
		r.byUser[userID] = rows
	}

	now := r.now()

	for _, id := range plan.ToDelete {
		delete(rows, id)
	}
	for _, entry := range plan.ToUpdate {
		stored, ok := rows[entry.ID]
		entry = entry.Clone()
		entry.UserID = userID
		entry.UpdatedAt = now
		if ok {
			entry.CreatedAt = stored.CreatedAt
		} else {
			entry.CreatedAt = now
		}
		rows[entry.ID] = entry
	}
	for _, entry := range plan.ToInsert {
		entry = entry.Clone()
		entry.UserID = userID
		entry.CreatedAt = now
		entry.UpdatedAt = now
		rows[entry.ID] = entry
	}

	return nil
}
