package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/domain/reconcile"
	"github.com/scoutbook/scoutbook/internal/infrastructure/repository/memory"
)

func TestDirectoryService_ListScoutsJoinsExperiences(t *testing.T) {
	playerRepo := memory.NewPlayerProfileRepository()
	scoutRepo := memory.NewScoutProfileRepository()
	expRepo := memory.NewExperienceRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, userID := range []string{"scout-a", "scout-b", "scout-c"} {
		record := profile.ScoutVariant().Empty(userID)
		record.Organization = "Club " + userID
		if _, err := scoutRepo.Insert(t.Context(), record); err != nil {
			t.Fatalf("insert scout %s: %v", userID, err)
		}
	}
	if err := expRepo.Reconcile(t.Context(), "scout-b", reconcile.Plan[experience.Experience]{
		ToInsert: []experience.Experience{
			{ID: "exp-1", UserID: "scout-b", Organization: "Ajax", SortOrder: 0},
			{ID: "exp-2", UserID: "scout-b", Organization: "PSV", SortOrder: 1},
		},
	}); err != nil {
		t.Fatalf("seed experiences: %v", err)
	}

	service, err := NewDirectoryService(playerRepo, scoutRepo, expRepo, logger)
	if err != nil {
		t.Fatalf("NewDirectoryService returned error: %v", err)
	}

	listings, err := service.ListScouts(t.Context(), 0)
	if err != nil {
		t.Fatalf("ListScouts returned error: %v", err)
	}
	if len(listings) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(listings))
	}
	if listings[0].Profile.UserID != "scout-a" || listings[1].Profile.UserID != "scout-b" {
		t.Fatalf("listing order does not follow profile order: %+v", listings)
	}
	if len(listings[1].Experiences) != 2 || listings[1].Experiences[0].Organization != "Ajax" {
		t.Fatalf("scout-b experiences wrong: %+v", listings[1].Experiences)
	}
	if len(listings[0].Experiences) != 0 {
		t.Fatalf("scout-a should have no experiences: %+v", listings[0].Experiences)
	}
}

func TestDirectoryService_ListPlayersHonorsLimit(t *testing.T) {
	playerRepo := memory.NewPlayerProfileRepository()
	scoutRepo := memory.NewScoutProfileRepository()
	expRepo := memory.NewExperienceRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, userID := range []string{"player-a", "player-b", "player-c"} {
		if _, err := playerRepo.Insert(t.Context(), profile.PlayerVariant().Empty(userID)); err != nil {
			t.Fatalf("insert player %s: %v", userID, err)
		}
	}

	service, err := NewDirectoryService(playerRepo, scoutRepo, expRepo, logger)
	if err != nil {
		t.Fatalf("NewDirectoryService returned error: %v", err)
	}

	players, err := service.ListPlayers(t.Context(), 2)
	if err != nil {
		t.Fatalf("ListPlayers returned error: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
}
