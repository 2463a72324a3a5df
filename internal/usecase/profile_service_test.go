package usecase

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/scoutbook/scoutbook/internal/domain/media"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/infrastructure/repository/memory"
	memorystorage "github.com/scoutbook/scoutbook/internal/infrastructure/storage/memory"
)

func newPlayerProfileService(t *testing.T) (*ProfileService[profile.PlayerProfile], *memory.ProfileRepository[profile.PlayerProfile], *memorystorage.Store) {
	t.Helper()

	repo := memory.NewPlayerProfileRepository()
	store := memorystorage.NewStore("https://cdn.example.com/media")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewProfileService(profile.PlayerVariant(), repo, store, logger)
	if err != nil {
		t.Fatalf("NewProfileService returned error: %v", err)
	}

	return service, repo, store
}

func TestProfileService_Load_CreatesForOwner(t *testing.T) {
	service, _, _ := newPlayerProfileService(t)

	created, err := service.Load(t.Context(), "user-1", true)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if created.UserID != "user-1" {
		t.Fatalf("expected user id user-1, got %q", created.UserID)
	}
	if created.FirstName != "" || created.LastName != "" {
		t.Fatalf("expected empty names on first load, got %q %q", created.FirstName, created.LastName)
	}

	again, err := service.Load(t.Context(), "user-1", true)
	if err != nil {
		t.Fatalf("second Load returned error: %v", err)
	}
	if !again.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("second Load minted a new row: %v vs %v", again.CreatedAt, created.CreatedAt)
	}
}

func TestProfileService_Load_ViewerGetsNotFound(t *testing.T) {
	service, _, _ := newPlayerProfileService(t)

	_, err := service.Load(t.Context(), "stranger", false)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// A viewer's read-only load must not create a row either.
	_, exists, repoErr := memory.NewPlayerProfileRepository().GetByUserID(t.Context(), "stranger")
	if repoErr != nil || exists {
		t.Fatalf("expected no row, exists=%v err=%v", exists, repoErr)
	}
}

func TestProfileService_Commit_UpdatesExistingRow(t *testing.T) {
	service, repo, _ := newPlayerProfileService(t)

	loaded, err := service.Load(t.Context(), "user-1", true)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	draft := loaded.Clone()
	draft.FirstName = "Lionel"
	draft.Position = "Forward"
	draft.Speed = 92

	committed, err := service.Commit(t.Context(), "user-1", CommitProfileInput[profile.PlayerProfile]{Draft: draft})
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	if committed.FirstName != "Lionel" || committed.Speed != 92 {
		t.Fatalf("commit did not persist edits: %+v", committed)
	}

	stored, exists, err := repo.GetByUserID(t.Context(), "user-1")
	if err != nil || !exists {
		t.Fatalf("expected stored row, exists=%v err=%v", exists, err)
	}
	if stored.Position != "Forward" {
		t.Fatalf("expected stored position Forward, got %q", stored.Position)
	}
}

func TestProfileService_Commit_InsertsWhenRowMissing(t *testing.T) {
	service, _, _ := newPlayerProfileService(t)

	draft := profile.PlayerVariant().Empty("user-9")
	draft.FirstName = "Kylian"

	committed, err := service.Commit(t.Context(), "user-9", CommitProfileInput[profile.PlayerProfile]{Draft: draft})
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}
	if committed.FirstName != "Kylian" {
		t.Fatalf("expected inserted row, got %+v", committed)
	}
}

func TestProfileService_Commit_RejectsForeignDraft(t *testing.T) {
	service, _, _ := newPlayerProfileService(t)

	draft := profile.PlayerVariant().Empty("user-2")

	_, err := service.Commit(t.Context(), "user-1", CommitProfileInput[profile.PlayerProfile]{Draft: draft})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProfileService_Commit_UploadsBeforeRowWrite(t *testing.T) {
	service, _, store := newPlayerProfileService(t)

	loaded, err := service.Load(t.Context(), "user-1", true)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	draft := loaded.Clone()
	draft.FirstName = "Erling"

	committed, err := service.Commit(t.Context(), "user-1", CommitProfileInput[profile.PlayerProfile]{
		Draft: draft,
		Uploads: []PendingUpload[profile.PlayerProfile]{{
			Purpose:     media.PurposeAvatar,
			Ext:         "png",
			ContentType: "image/png",
			Body:        strings.NewReader("avatar-bytes"),
			SetURL: func(d *profile.PlayerProfile, url string) {
				d.PhotoURL = url
			},
		}},
	})
	if err != nil {
		t.Fatalf("Commit returned error: %v", err)
	}

	wantURL := "https://cdn.example.com/media/user-1/avatar.png"
	if committed.PhotoURL != wantURL {
		t.Fatalf("expected photo url %q, got %q", wantURL, committed.PhotoURL)
	}
	if _, _, ok := store.Object("user-1/avatar.png"); !ok {
		t.Fatalf("expected object user-1/avatar.png in store")
	}
}

func TestProfileService_Commit_FailedUploadLeavesRowUntouched(t *testing.T) {
	service, repo, _ := newPlayerProfileService(t)

	loaded, err := service.Load(t.Context(), "user-1", true)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	draft := loaded.Clone()
	draft.FirstName = "Broken"

	_, err = service.Commit(t.Context(), "user-1", CommitProfileInput[profile.PlayerProfile]{
		Draft: draft,
		Uploads: []PendingUpload[profile.PlayerProfile]{{
			Purpose: media.Purpose("poster"),
			Body:    strings.NewReader("x"),
		}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown purpose, got %v", err)
	}

	stored, _, err := repo.GetByUserID(t.Context(), "user-1")
	if err != nil {
		t.Fatalf("GetByUserID returned error: %v", err)
	}
	if stored.FirstName == "Broken" {
		t.Fatalf("aborted commit must not write the row")
	}
}
