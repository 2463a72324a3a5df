package usecase

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/scoutbook/scoutbook/internal/domain/media"
	memorystorage "github.com/scoutbook/scoutbook/internal/infrastructure/storage/memory"
)

func newMediaService(t *testing.T) (*MediaService, *memorystorage.Store) {
	t.Helper()

	store := memorystorage.NewStore("https://cdn.example.com/media")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service, err := NewMediaService(store, logger)
	if err != nil {
		t.Fatalf("NewMediaService returned error: %v", err)
	}

	return service, store
}

func TestMediaService_UploadProfileAssetOverwrites(t *testing.T) {
	service, store := newMediaService(t)

	first, err := service.UploadProfileAsset(t.Context(), "user-1", media.PurposeAvatar, "me.png", strings.NewReader("v1"), "image/png")
	if err != nil {
		t.Fatalf("first upload returned error: %v", err)
	}
	second, err := service.UploadProfileAsset(t.Context(), "user-1", media.PurposeAvatar, "other.png", strings.NewReader("v2"), "image/png")
	if err != nil {
		t.Fatalf("second upload returned error: %v", err)
	}

	if first != second {
		t.Fatalf("avatar url must be stable across replacements: %q vs %q", first, second)
	}
	data, _, ok := store.Object("user-1/avatar.png")
	if !ok || string(data) != "v2" {
		t.Fatalf("expected replaced avatar bytes, got %q ok=%v", data, ok)
	}
}

func TestMediaService_UploadVideoNeverClobbers(t *testing.T) {
	service, _ := newMediaService(t)

	base := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	service.now = func() time.Time { return base }
	first, err := service.UploadVideo(t.Context(), "user-1", "goal.mp4", strings.NewReader("a"), "video/mp4")
	if err != nil {
		t.Fatalf("first video upload returned error: %v", err)
	}

	service.now = func() time.Time { return base.Add(time.Second) }
	second, err := service.UploadVideo(t.Context(), "user-1", "goal.mp4", strings.NewReader("b"), "video/mp4")
	if err != nil {
		t.Fatalf("second video upload returned error: %v", err)
	}

	if first == second {
		t.Fatalf("video uploads must not share a key: %q", first)
	}
}

func TestMediaService_EmbedURL(t *testing.T) {
	service, _ := newMediaService(t)

	got, err := service.EmbedURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("EmbedURL returned error: %v", err)
	}
	if got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Fatalf("unexpected embed url %q", got)
	}

	if _, err := service.EmbedURL("https://example.com/watch?v=nope"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
