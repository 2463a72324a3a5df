package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/scoutbook/scoutbook/internal/domain/media"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

const defaultSweepWorkers = 4

type MediaSweepInput struct {
	DryRun  bool
	Workers int
}

type MediaSweepUserResult struct {
	UserID     string
	Deleted    int
	Kept       int
	Status     string
	Message    string
	DurationMs int64
}

type MediaSweepResult struct {
	UsersScanned int
	Deleted      int
	Kept         int
	Failed       int
	DryRun       bool
	Users        []MediaSweepUserResult
}

const (
	sweepStatusSuccess = "success"
	sweepStatusFailed  = "failed"
)

// MediaSweepService removes stored objects that no profile references
// anymore, such as replaced videos or assets left behind by aborted
// commits. Each user's prefix is swept by an independent worker.
type MediaSweepService struct {
	players profile.Repository[profile.PlayerProfile]
	scouts  profile.Repository[profile.ScoutProfile]
	store   media.Store
	baseURL string
	logger  *slog.Logger
}

func NewMediaSweepService(
	players profile.Repository[profile.PlayerProfile],
	scouts profile.Repository[profile.ScoutProfile],
	store media.Store,
	baseURL string,
	logger *slog.Logger,
) (*MediaSweepService, error) {
	if players == nil || scouts == nil {
		return nil, fmt.Errorf("%w: profile repositories are required", ErrInvalidInput)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: media store is required", ErrInvalidInput)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MediaSweepService{
		players: players,
		scouts:  scouts,
		store:   store,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}

func (s *MediaSweepService) Run(ctx context.Context, input MediaSweepInput) (MediaSweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "MediaSweepService.Run")
	defer span.End()

	referenced, err := s.referencedKeys(ctx)
	if err != nil {
		return MediaSweepResult{}, err
	}

	userIDs := make([]string, 0, len(referenced))
	for userID := range referenced {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	result := MediaSweepResult{
		UsersScanned: len(userIDs),
		DryRun:       input.DryRun,
	}
	if len(userIDs) == 0 {
		return result, nil
	}

	workerCount := input.Workers
	if workerCount <= 0 {
		workerCount = defaultSweepWorkers
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return MediaSweepResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	rows := make(chan MediaSweepUserResult, len(userIDs))

	var deleted atomic.Int32
	var kept atomic.Int32
	var failed atomic.Int32

	var workers sync.WaitGroup
	for _, userID := range userIDs {
		userID := userID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.sweepUser(ctx, userID, referenced[userID], input.DryRun)
			row.DurationMs = time.Since(start).Milliseconds()

			deleted.Add(int32(row.Deleted))
			kept.Add(int32(row.Kept))
			if row.Status == sweepStatusFailed {
				failed.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return MediaSweepResult{}, fmt.Errorf("submit sweep task: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Users = append(result.Users, row)
	}
	sort.SliceStable(result.Users, func(i, j int) bool {
		return result.Users[i].UserID < result.Users[j].UserID
	})

	result.Deleted = int(deleted.Load())
	result.Kept = int(kept.Load())
	result.Failed = int(failed.Load())

	s.logger.InfoContext(ctx, "media sweep finished",
		slog.Int("users", result.UsersScanned),
		slog.Int("deleted", result.Deleted),
		slog.Int("kept", result.Kept),
		slog.Int("failed", result.Failed),
		slog.Bool("dry_run", result.DryRun),
	)

	return result, nil
}

func (s *MediaSweepService) sweepUser(ctx context.Context, userID string, keep map[string]struct{}, dryRun bool) MediaSweepUserResult {
	row := MediaSweepUserResult{UserID: userID, Status: sweepStatusSuccess}

	keys, err := s.store.ListPrefix(ctx, media.UserPrefix(userID))
	if err != nil {
		row.Status = sweepStatusFailed
		row.Message = fmt.Sprintf("list prefix: %v", err)
		return row
	}

	orphans := make([]string, 0)
	for _, key := range keys {
		if _, ok := keep[key]; ok {
			row.Kept++
			continue
		}
		orphans = append(orphans, key)
	}

	if len(orphans) == 0 {
		return row
	}
	if dryRun {
		row.Deleted = len(orphans)
		return row
	}

	if err := s.store.Delete(ctx, orphans); err != nil {
		row.Status = sweepStatusFailed
		row.Message = fmt.Sprintf("delete objects: %v", err)
		return row
	}
	row.Deleted = len(orphans)

	return row
}

// referencedKeys maps each known user to the set of object keys their
// profile row still points at.
func (s *MediaSweepService) referencedKeys(ctx context.Context) (map[string]map[string]struct{}, error) {
	referenced := make(map[string]map[string]struct{})
	add := func(userID, url string) {
		if referenced[userID] == nil {
			referenced[userID] = make(map[string]struct{})
		}
		key := media.KeyFromURL(s.baseURL, url)
		if key != "" {
			referenced[userID][key] = struct{}{}
		}
	}

	players, err := s.players.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list player profiles: %w", err)
	}
	for _, p := range players {
		add(p.UserID, p.PhotoURL)
		for _, video := range p.VideoHighlights {
			add(p.UserID, video)
		}
	}

	scouts, err := s.scouts.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list scout profiles: %w", err)
	}
	for _, sc := range scouts {
		add(sc.UserID, sc.PhotoURL)
		add(sc.UserID, sc.CoverPhotoURL)
	}

	return referenced, nil
}
