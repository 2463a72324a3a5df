package experience

import (
	"context"

	"github.com/scoutbook/scoutbook/internal/domain/reconcile"
)

// Repository exposes experience persistence operations. Reconcile applies a
// full-list replacement plan for one owner atomically: either every delete,
// update and insert in the plan lands, or none of them do.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Experience, error)
	Reconcile(ctx context.Context, userID string, plan reconcile.Plan[Experience]) error
}
