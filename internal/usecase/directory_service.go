package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

const directoryFanout = 8

// ScoutListing is a scout profile joined with their experience history for
// directory pages.
type ScoutListing struct {
	Profile     profile.ScoutProfile
	Experiences []experience.Experience
}

type DirectoryService struct {
	players profile.Repository[profile.PlayerProfile]
	scouts  profile.Repository[profile.ScoutProfile]
	exps    experience.Repository
	logger  *slog.Logger
}

func NewDirectoryService(
	players profile.Repository[profile.PlayerProfile],
	scouts profile.Repository[profile.ScoutProfile],
	exps experience.Repository,
	logger *slog.Logger,
) (*DirectoryService, error) {
	if players == nil || scouts == nil || exps == nil {
		return nil, fmt.Errorf("%w: directory repositories are required", ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DirectoryService{players: players, scouts: scouts, exps: exps, logger: logger}, nil
}

func (s *DirectoryService) ListPlayers(ctx context.Context, limit int) ([]profile.PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListPlayers")
	defer span.End()

	players, err := s.players.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list player profiles: %w", err)
	}

	return players, nil
}

// ListScouts returns scout profiles with their experiences attached. The
// per-scout experience lookups fan out concurrently; result order follows
// the profile listing.
func (s *DirectoryService) ListScouts(ctx context.Context, limit int) ([]ScoutListing, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListScouts")
	defer span.End()

	scouts, err := s.scouts.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list scout profiles: %w", err)
	}

	listings := make([]ScoutListing, len(scouts))
	p := pool.New().WithMaxGoroutines(directoryFanout).WithContext(ctx)
	for i, scout := range scouts {
		p.Go(func(ctx context.Context) error {
			entries, err := s.exps.ListByUser(ctx, scout.UserID)
			if err != nil {
				return fmt.Errorf("list experiences for scout %s: %w", scout.UserID, err)
			}
			listings[i] = ScoutListing{Profile: scout, Experiences: entries}
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return listings, nil
}
