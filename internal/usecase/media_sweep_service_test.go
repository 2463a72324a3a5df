package usecase

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/infrastructure/repository/memory"
	memorystorage "github.com/scoutbook/scoutbook/internal/infrastructure/storage/memory"
)

func TestMediaSweepService_DeletesOrphanedObjects(t *testing.T) {
	playerRepo := memory.NewPlayerProfileRepository()
	scoutRepo := memory.NewScoutProfileRepository()
	store := memorystorage.NewStore("https://cdn.example.com/media")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	player := profile.PlayerVariant().Empty("player-1")
	player.PhotoURL = store.PublicURL("player-1/avatar.png")
	player.VideoHighlights = []string{store.PublicURL("player-1/1700000000000.mp4")}
	if _, err := playerRepo.Insert(t.Context(), player); err != nil {
		t.Fatalf("insert player: %v", err)
	}

	scout := profile.ScoutVariant().Empty("scout-1")
	scout.PhotoURL = store.PublicURL("scout-1/scout-avatar.jpg")
	if _, err := scoutRepo.Insert(t.Context(), scout); err != nil {
		t.Fatalf("insert scout: %v", err)
	}

	referenced := []string{
		"player-1/avatar.png",
		"player-1/1700000000000.mp4",
		"scout-1/scout-avatar.jpg",
	}
	orphaned := []string{
		"player-1/1600000000000.mp4",
		"scout-1/scout-cover.png",
	}
	for _, key := range append(append([]string(nil), referenced...), orphaned...) {
		if err := store.Upload(t.Context(), key, strings.NewReader("bytes"), "application/octet-stream", true); err != nil {
			t.Fatalf("seed object %s: %v", key, err)
		}
	}

	service, err := NewMediaSweepService(playerRepo, scoutRepo, store, "https://cdn.example.com/media", logger)
	if err != nil {
		t.Fatalf("NewMediaSweepService returned error: %v", err)
	}

	result, err := service.Run(t.Context(), MediaSweepInput{Workers: 2})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if result.UsersScanned != 2 {
		t.Fatalf("expected 2 users scanned, got %d", result.UsersScanned)
	}
	if result.Deleted != len(orphaned) {
		t.Fatalf("expected %d deletions, got %d", len(orphaned), result.Deleted)
	}
	if result.Kept != len(referenced) {
		t.Fatalf("expected %d kept, got %d", len(referenced), result.Kept)
	}
	if result.Failed != 0 {
		t.Fatalf("expected no failures, got %d", result.Failed)
	}

	for _, key := range referenced {
		if _, _, ok := store.Object(key); !ok {
			t.Fatalf("referenced object %s was deleted", key)
		}
	}
	for _, key := range orphaned {
		if _, _, ok := store.Object(key); ok {
			t.Fatalf("orphaned object %s survived", key)
		}
	}
}

func TestMediaSweepService_DryRunDeletesNothing(t *testing.T) {
	playerRepo := memory.NewPlayerProfileRepository()
	scoutRepo := memory.NewScoutProfileRepository()
	store := memorystorage.NewStore("https://cdn.example.com/media")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := playerRepo.Insert(t.Context(), profile.PlayerVariant().Empty("player-1")); err != nil {
		t.Fatalf("insert player: %v", err)
	}
	if err := store.Upload(t.Context(), "player-1/stale.mp4", strings.NewReader("bytes"), "video/mp4", true); err != nil {
		t.Fatalf("seed object: %v", err)
	}

	service, err := NewMediaSweepService(playerRepo, scoutRepo, store, "https://cdn.example.com/media", logger)
	if err != nil {
		t.Fatalf("NewMediaSweepService returned error: %v", err)
	}

	result, err := service.Run(t.Context(), MediaSweepInput{DryRun: true})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !result.DryRun || result.Deleted != 1 {
		t.Fatalf("expected dry run reporting 1 candidate, got %+v", result)
	}
	if _, _, ok := store.Object("player-1/stale.mp4"); !ok {
		t.Fatalf("dry run must not delete objects")
	}
}
