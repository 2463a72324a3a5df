package reconcile

import (
	"reflect"
	"testing"
)

type row struct {
	id    string
	name  string
	order int
}

func rowKey(r row) string       { return r.id }
func rowOrder(r row, i int) row { r.order = i; return r }

func TestOrdered_MixedDraft(t *testing.T) {
	t.Parallel()

	existing := []row{
		{id: "1", name: "first", order: 0},
		{id: "2", name: "second", order: 1},
		{id: "3", name: "third", order: 2},
	}
	draft := []row{
		{id: "3", name: "third edited"},
		{name: "brand new"},
		{id: "1", name: "first"},
	}

	plan := Ordered(existing, draft, rowKey, rowOrder)

	if !reflect.DeepEqual(plan.ToDelete, []string{"2"}) {
		t.Fatalf("unexpected deletes: %v", plan.ToDelete)
	}

	wantUpdates := []row{
		{id: "3", name: "third edited", order: 0},
		{id: "1", name: "first", order: 2},
	}
	if !reflect.DeepEqual(plan.ToUpdate, wantUpdates) {
		t.Fatalf("unexpected updates: %+v", plan.ToUpdate)
	}

	wantInserts := []row{{name: "brand new", order: 1}}
	if !reflect.DeepEqual(plan.ToInsert, wantInserts) {
		t.Fatalf("unexpected inserts: %+v", plan.ToInsert)
	}
}

func TestOrdered_EmptyDraftDeletesEverything(t *testing.T) {
	t.Parallel()

	existing := []row{{id: "1"}, {id: "2"}}

	plan := Ordered(existing, nil, rowKey, rowOrder)

	if !reflect.DeepEqual(plan.ToDelete, []string{"1", "2"}) {
		t.Fatalf("unexpected deletes: %v", plan.ToDelete)
	}
	if len(plan.ToUpdate) != 0 || len(plan.ToInsert) != 0 {
		t.Fatalf("expected no updates or inserts, got %+v", plan)
	}
}

func TestOrdered_AllNewDraftInsertsInOrder(t *testing.T) {
	t.Parallel()

	draft := []row{{name: "a"}, {name: "b"}, {name: "c"}}

	plan := Ordered(nil, draft, rowKey, rowOrder)

	if len(plan.ToDelete) != 0 {
		t.Fatalf("unexpected deletes: %v", plan.ToDelete)
	}
	if len(plan.ToInsert) != 3 {
		t.Fatalf("expected 3 inserts, got %d", len(plan.ToInsert))
	}
	for i, entry := range plan.ToInsert {
		if entry.order != i {
			t.Fatalf("insert %d has order %d", i, entry.order)
		}
	}
}

func TestOrdered_NoChanges(t *testing.T) {
	t.Parallel()

	existing := []row{{id: "1", order: 0}, {id: "2", order: 1}}
	draft := []row{{id: "1"}, {id: "2"}}

	plan := Ordered(existing, draft, rowKey, rowOrder)

	if len(plan.ToDelete) != 0 {
		t.Fatalf("unexpected deletes: %v", plan.ToDelete)
	}
	// Every surviving row is rewritten, even when untouched.
	if len(plan.ToUpdate) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(plan.ToUpdate))
	}

	if plan.Empty() {
		t.Fatalf("plan with updates must not report empty")
	}
	if !(Plan[row]{}).Empty() {
		t.Fatalf("zero plan must report empty")
	}
}
