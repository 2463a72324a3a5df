package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/scoutbook/scoutbook/internal/domain/media"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

type MediaService struct {
	store  media.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewMediaService(store media.Store, logger *slog.Logger) (*MediaService, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: media store is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MediaService{store: store, logger: logger, now: time.Now}, nil
}

// UploadProfileAsset stores a profile image under the fixed per-purpose key
// for ownerID, replacing whatever was there. Returns the public URL.
func (s *MediaService) UploadProfileAsset(ctx context.Context, ownerID string, purpose media.Purpose, filename string, body io.Reader, contentType string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "MediaService.UploadProfileAsset")
	defer span.End()

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	if !purpose.Valid() {
		return "", fmt.Errorf("%w: unknown media purpose %q", ErrInvalidInput, purpose)
	}
	if body == nil {
		return "", fmt.Errorf("%w: upload body is required", ErrInvalidInput)
	}

	path := media.ObjectPath(ownerID, purpose, media.Ext(filename))
	if err := s.store.Upload(ctx, path, body, contentType, true); err != nil {
		return "", fmt.Errorf("upload %s: %w", purpose, err)
	}

	s.logger.InfoContext(ctx, "profile asset uploaded",
		slog.String("user_id", ownerID),
		slog.String("purpose", string(purpose)),
		slog.String("path", path),
	)

	return s.store.PublicURL(path), nil
}

// UploadVideo stores a highlight video under a timestamped key so earlier
// uploads are never clobbered. Returns the public URL.
func (s *MediaService) UploadVideo(ctx context.Context, ownerID, filename string, body io.Reader, contentType string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "MediaService.UploadVideo")
	defer span.End()

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	if body == nil {
		return "", fmt.Errorf("%w: upload body is required", ErrInvalidInput)
	}

	path := media.VideoPath(ownerID, media.Ext(filename), s.now())
	if err := s.store.Upload(ctx, path, body, contentType, false); err != nil {
		return "", fmt.Errorf("upload video: %w", err)
	}

	s.logger.InfoContext(ctx, "video uploaded",
		slog.String("user_id", ownerID),
		slog.String("path", path),
	)

	return s.store.PublicURL(path), nil
}

// EmbedURL resolves a pasted YouTube link into its embeddable form.
func (s *MediaService) EmbedURL(raw string) (string, error) {
	videoID, ok := profile.ExtractYouTubeID(raw)
	if !ok {
		return "", fmt.Errorf("%w: not a recognizable youtube url", ErrInvalidInput)
	}

	return profile.YouTubeEmbedURL(videoID), nil
}
