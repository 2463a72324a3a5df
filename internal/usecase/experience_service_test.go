package usecase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/infrastructure/repository/memory"
)

type sequenceIDGenerator struct {
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

func newExperienceService(t *testing.T) (*ExperienceService, *memory.ExperienceRepository) {
	t.Helper()

	repo := memory.NewExperienceRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewExperienceService(repo, &sequenceIDGenerator{prefix: "exp"}, logger)
	if err != nil {
		t.Fatalf("NewExperienceService returned error: %v", err)
	}

	return service, repo
}

func TestExperienceService_Commit_InsertsInDraftOrder(t *testing.T) {
	service, _ := newExperienceService(t)

	committed, err := service.Commit(t.Context(), "scout-1", []experience.Experience{
		{Organization: "Ajax", Role: "Youth Scout"},
		{Organization: "PSV", Role: "Regional Scout"},
	})
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	if len(committed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(committed))
	}
	for i, entry := range committed {
		if entry.SortOrder != i {
			t.Fatalf("entry %d has sort order %d", i, entry.SortOrder)
		}
		if entry.ID == "" {
			t.Fatalf("entry %d was not minted an id", i)
		}
		if entry.UserID != "scout-1" {
			t.Fatalf("entry %d has user id %q", i, entry.UserID)
		}
	}
}

func TestExperienceService_Commit_ReconcilesEditsDeletesAndInserts(t *testing.T) {
	service, _ := newExperienceService(t)

	initial, err := service.Commit(t.Context(), "scout-1", []experience.Experience{
		{Organization: "Ajax", Role: "Youth Scout"},
		{Organization: "PSV", Role: "Regional Scout"},
		{Organization: "Feyenoord", Role: "Analyst"},
	})
	if err != nil {
		t.Fatalf("initial Commit returned error: %v", err)
	}

	// Keep Feyenoord first with an edited role, add a new club, keep Ajax
	// last, and drop PSV entirely.
	edited := initial[2].Clone()
	edited.Role = "Head Analyst"
	draft := []experience.Experience{
		edited,
		{Organization: "Barcelona", Role: "International Scout"},
		initial[0].Clone(),
	}

	committed, err := service.Commit(t.Context(), "scout-1", draft)
	if err != nil {
		t.Fatalf("second Commit returned error: %v", err)
	}

	if len(committed) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(committed))
	}
	if committed[0].Organization != "Feyenoord" || committed[0].Role != "Head Analyst" {
		t.Fatalf("edited entry not first: %+v", committed[0])
	}
	if committed[0].ID != initial[2].ID {
		t.Fatalf("surviving entry changed identity: %q vs %q", committed[0].ID, initial[2].ID)
	}
	if committed[1].Organization != "Barcelona" || committed[1].ID == "" {
		t.Fatalf("inserted entry wrong: %+v", committed[1])
	}
	if committed[2].ID != initial[0].ID {
		t.Fatalf("kept entry changed identity: %+v", committed[2])
	}
	for _, entry := range committed {
		if entry.Organization == "PSV" {
			t.Fatalf("removed entry survived the commit")
		}
	}
}

func TestExperienceService_Commit_EmptyDraftClearsList(t *testing.T) {
	service, _ := newExperienceService(t)

	if _, err := service.Commit(t.Context(), "scout-1", []experience.Experience{
		{Organization: "Ajax", Role: "Youth Scout"},
	}); err != nil {
		t.Fatalf("seed Commit returned error: %v", err)
	}

	committed, err := service.Commit(t.Context(), "scout-1", nil)
	if err != nil {
		t.Fatalf("clearing Commit returned error: %v", err)
	}
	if len(committed) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(committed))
	}
}

func TestExperienceService_Commit_RejectsInvalidEntry(t *testing.T) {
	service, _ := newExperienceService(t)

	_, err := service.Commit(t.Context(), "scout-1", []experience.Experience{
		{Role: "Scout"},
	})
	if !errors.Is(err, experience.ErrMissingOrganization) {
		t.Fatalf("expected ErrMissingOrganization, got %v", err)
	}
}

func TestExperienceSession_IndexOperations(t *testing.T) {
	session := NewExperienceSession([]experience.Experience{
		{ID: "exp-001", Organization: "Ajax"},
	})

	if err := session.BeginEdit(); err != nil {
		t.Fatalf("BeginEdit returned error: %v", err)
	}

	index, err := session.Add()
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if index != 1 {
		t.Fatalf("expected new entry at index 1, got %d", index)
	}

	if err := session.Update(index, func(entry *experience.Experience) {
		entry.Organization = "PSV"
	}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if err := session.Remove(0); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}

	draft, err := session.Draft()
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if len(draft) != 1 || draft[0].Organization != "PSV" {
		t.Fatalf("unexpected draft after edits: %+v", draft)
	}
	if view := session.View(); len(view) != 1 || view[0].Organization != "Ajax" {
		t.Fatalf("loaded list changed while editing: %+v", view)
	}

	if err := session.Update(5, func(*experience.Experience) {}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out of range index, got %v", err)
	}
}
