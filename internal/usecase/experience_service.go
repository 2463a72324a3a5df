package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/reconcile"
	"github.com/scoutbook/scoutbook/internal/platform/id"
)

// ExperienceService reconciles a scout's full experience list against an
// edited draft. Commit diffs the draft against the stored rows by public ID
// and hands the repository a single plan, so deletes, updates, and inserts
// land atomically with display order rewritten from draft position.
type ExperienceService struct {
	repo   experience.Repository
	idGen  id.Generator
	logger *slog.Logger
}

func NewExperienceService(repo experience.Repository, idGen id.Generator, logger *slog.Logger) (*ExperienceService, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: experience repository is required", ErrInvalidInput)
	}
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ExperienceService{repo: repo, idGen: idGen, logger: logger}, nil
}

// Load returns the stored experiences for userID ordered by display position.
func (s *ExperienceService) Load(ctx context.Context, userID string) ([]experience.Experience, error) {
	ctx, span := startUsecaseSpan(ctx, "ExperienceService.Load")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}

	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	return entries, nil
}

// Commit replaces ownerID's experience list with the draft. Draft entries
// without an ID are minted one and inserted; entries whose ID matches a
// stored row are updated in place; stored rows missing from the draft are
// removed. The reloaded list is returned so callers see stored state.
func (s *ExperienceService) Commit(ctx context.Context, ownerID string, draft []experience.Experience) ([]experience.Experience, error) {
	ctx, span := startUsecaseSpan(ctx, "ExperienceService.Commit")
	defer span.End()

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	prepared := make([]experience.Experience, 0, len(draft))
	for i, entry := range draft {
		entry = entry.Clone()
		entry.UserID = ownerID
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("draft entry %d: %w", i, err)
		}
		prepared = append(prepared, entry)
	}

	existing, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	plan := reconcile.Ordered(existing, prepared,
		func(e experience.Experience) string { return e.ID },
		func(e experience.Experience, position int) experience.Experience {
			e.SortOrder = position
			return e
		},
	)

	for i := range plan.ToInsert {
		newID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("mint experience id: %w", err)
		}
		plan.ToInsert[i].ID = newID
	}

	if err := s.repo.Reconcile(ctx, ownerID, plan); err != nil {
		return nil, fmt.Errorf("reconcile experiences: %w", err)
	}

	s.logger.InfoContext(ctx, "experiences committed",
		slog.String("user_id", ownerID),
		slog.Int("deleted", len(plan.ToDelete)),
		slog.Int("updated", len(plan.ToUpdate)),
		slog.Int("inserted", len(plan.ToInsert)),
	)

	committed, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reload experiences: %w", err)
	}

	return committed, nil
}
