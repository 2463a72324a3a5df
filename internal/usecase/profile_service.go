package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/scoutbook/scoutbook/internal/domain/media"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

// PendingUpload is a media asset staged alongside a profile commit. The
// object is uploaded before any database write; SetURL folds the resulting
// public URL into the draft so the stored row references the new asset.
type PendingUpload[T any] struct {
	Purpose     media.Purpose
	Ext         string
	ContentType string
	Body        io.Reader
	SetURL      func(draft *T, url string)
}

type CommitProfileInput[T any] struct {
	Draft   T
	Uploads []PendingUpload[T]
}

type ProfileService[T profile.Record[T]] struct {
	variant profile.Variant[T]
	repo    profile.Repository[T]
	store   media.Store
	logger  *slog.Logger
}

func NewProfileService[T profile.Record[T]](
	variant profile.Variant[T],
	repo profile.Repository[T],
	store media.Store,
	logger *slog.Logger,
) (*ProfileService[T], error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: profile repository is required", ErrInvalidInput)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: media store is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProfileService[T]{
		variant: variant,
		repo:    repo,
		store:   store,
		logger:  logger,
	}, nil
}

// Load fetches the profile for userID. When allowCreate is set and no row
// exists yet, an empty profile is inserted and returned; viewers loading
// somebody else's missing profile get ErrNotFound instead.
func (s *ProfileService[T]) Load(ctx context.Context, userID string, allowCreate bool) (T, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.Load")
	defer span.End()

	var zero T

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return zero, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	record, exists, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return zero, fmt.Errorf("get %s profile by user id: %w", s.variant.Name, err)
	}
	if exists {
		return record, nil
	}
	if !allowCreate {
		return zero, fmt.Errorf("%w: %s profile for user %s", ErrNotFound, s.variant.Name, userID)
	}

	created, err := s.repo.Insert(ctx, s.variant.Empty(userID))
	if err != nil {
		return zero, fmt.Errorf("create empty %s profile: %w", s.variant.Name, err)
	}

	s.logger.InfoContext(ctx, "profile created on first load",
		slog.String("variant", s.variant.Name),
		slog.String("user_id", userID),
	)

	return created, nil
}

// Commit persists a draft for its owner. Staged uploads run first and any
// upload failure aborts the whole commit before the row is touched, so the
// stored profile never points at an asset that was not written.
func (s *ProfileService[T]) Commit(ctx context.Context, ownerID string, input CommitProfileInput[T]) (T, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.Commit")
	defer span.End()

	var zero T

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return zero, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	draft := input.Draft.Clone()
	if draft.Owner() != ownerID {
		return zero, fmt.Errorf("%w: draft belongs to another user", ErrUnauthorized)
	}

	for _, upload := range input.Uploads {
		if !upload.Purpose.Valid() {
			return zero, fmt.Errorf("%w: unknown media purpose %q", ErrInvalidInput, upload.Purpose)
		}
		if upload.Body == nil {
			return zero, fmt.Errorf("%w: upload body is required for %s", ErrInvalidInput, upload.Purpose)
		}

		path := media.ObjectPath(ownerID, upload.Purpose, upload.Ext)
		if err := s.store.Upload(ctx, path, upload.Body, upload.ContentType, true); err != nil {
			return zero, fmt.Errorf("upload %s: %w", upload.Purpose, err)
		}
		if upload.SetURL != nil {
			upload.SetURL(&draft, s.store.PublicURL(path))
		}
	}

	_, exists, err := s.repo.GetByUserID(ctx, ownerID)
	if err != nil {
		return zero, fmt.Errorf("get %s profile by user id: %w", s.variant.Name, err)
	}

	if exists {
		if err := s.repo.Update(ctx, draft); err != nil {
			return zero, fmt.Errorf("update %s profile: %w", s.variant.Name, err)
		}
	} else {
		if _, err := s.repo.Insert(ctx, draft); err != nil {
			return zero, fmt.Errorf("insert %s profile: %w", s.variant.Name, err)
		}
	}

	committed, found, err := s.repo.GetByUserID(ctx, ownerID)
	if err != nil {
		return zero, fmt.Errorf("reload %s profile: %w", s.variant.Name, err)
	}
	if !found {
		return zero, fmt.Errorf("%w: %s profile vanished after commit", ErrDependencyUnavailable, s.variant.Name)
	}

	s.logger.InfoContext(ctx, "profile committed",
		slog.String("variant", s.variant.Name),
		slog.String("user_id", ownerID),
		slog.Int("uploads", len(input.Uploads)),
	)

	return committed, nil
}
