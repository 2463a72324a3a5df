// Package reconcile computes full-list replacement plans for ordered child
// collections that have no stable identity until saved.
package reconcile

// Plan is the explicit outcome of diffing a draft list against the
// persisted list: rows to delete by key, surviving rows to rewrite, and
// key-less drafts to insert. Update and insert entries carry their final
// position already applied.
type Plan[T any] struct {
	ToDelete []string
	ToUpdate []T
	ToInsert []T
}

func (p Plan[T]) Empty() bool {
	return len(p.ToDelete) == 0 && len(p.ToUpdate) == 0 && len(p.ToInsert) == 0
}

// Ordered diffs draft against existing by key. keyFn returns the stable
// identity of an entry, or "" for an unsaved draft. withOrder stamps an
// entry with its zero-based draft position; every surviving row is
// rewritten with its current position regardless of whether its fields
// changed, so persisted order always equals draft order.
func Ordered[T any](existing, draft []T, keyFn func(T) string, withOrder func(T, int) T) Plan[T] {
	draftKeys := make(map[string]struct{}, len(draft))
	for _, entry := range draft {
		if key := keyFn(entry); key != "" {
			draftKeys[key] = struct{}{}
		}
	}

	var plan Plan[T]
	for _, entry := range existing {
		key := keyFn(entry)
		if key == "" {
			continue
		}
		if _, kept := draftKeys[key]; !kept {
			plan.ToDelete = append(plan.ToDelete, key)
		}
	}

	for i, entry := range draft {
		ordered := withOrder(entry, i)
		if keyFn(entry) == "" {
			plan.ToInsert = append(plan.ToInsert, ordered)
			continue
		}
		plan.ToUpdate = append(plan.ToUpdate, ordered)
	}

	return plan
}
