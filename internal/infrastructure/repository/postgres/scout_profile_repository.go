package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	qb "github.com/scoutbook/scoutbook/internal/platform/querybuilder"
)

type ScoutProfileRepository struct {
	db *sqlx.DB
}

func NewScoutProfileRepository(db *sqlx.DB) *ScoutProfileRepository {
	return &ScoutProfileRepository{db: db}
}

func (r *ScoutProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.ScoutProfile, bool, error) {
	query, args, err := qb.Select("*").
		From("scout_profiles").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.ScoutProfile{}, false, fmt.Errorf("build get scout profile query: %w", err)
	}

	var row scoutProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.ScoutProfile{}, false, nil
		}
		return profile.ScoutProfile{}, false, fmt.Errorf("get scout profile: %w", err)
	}

	return scoutProfileFromRow(row), true, nil
}

// Insert creates the row unless one already exists for the user; concurrent
// first loads converge on a single row via the conflict target.
func (r *ScoutProfileRepository) Insert(ctx context.Context, record profile.ScoutProfile) (profile.ScoutProfile, error) {
	const insertQuery = `
INSERT INTO scout_profiles (
    user_id, first_name, last_name, bio, country, organization,
    title, skills, photo_url, cover_photo_url
) VALUES (
    :user_id, :first_name, :last_name, :bio, :country, :organization,
    :title, :skills, :photo_url, :cover_photo_url
)
ON CONFLICT (user_id) WHERE deleted_at IS NULL
DO NOTHING`

	insertSQL, insertArgs, err := sqlx.Named(insertQuery, scoutProfileNamedArgs(record))
	if err != nil {
		return profile.ScoutProfile{}, fmt.Errorf("bind insert scout profile query: %w", err)
	}
	insertSQL = r.db.Rebind(insertSQL)

	if _, err := r.db.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return profile.ScoutProfile{}, fmt.Errorf("insert scout profile: %w", err)
	}

	stored, exists, err := r.GetByUserID(ctx, record.UserID)
	if err != nil {
		return profile.ScoutProfile{}, err
	}
	if !exists {
		return profile.ScoutProfile{}, fmt.Errorf("insert scout profile: row missing after insert")
	}

	return stored, nil
}

func (r *ScoutProfileRepository) Update(ctx context.Context, record profile.ScoutProfile) error {
	const updateQuery = `
UPDATE scout_profiles SET
    first_name = :first_name,
    last_name = :last_name,
    bio = :bio,
    country = :country,
    organization = :organization,
    title = :title,
    skills = :skills,
    photo_url = :photo_url,
    cover_photo_url = :cover_photo_url,
    updated_at = NOW()
WHERE user_id = :user_id
  AND deleted_at IS NULL`

	updateSQL, updateArgs, err := sqlx.Named(updateQuery, scoutProfileNamedArgs(record))
	if err != nil {
		return fmt.Errorf("bind update scout profile query: %w", err)
	}
	updateSQL = r.db.Rebind(updateSQL)

	if _, err := r.db.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
		return fmt.Errorf("update scout profile: %w", err)
	}

	return nil
}

func (r *ScoutProfileRepository) List(ctx context.Context, limit int) ([]profile.ScoutProfile, error) {
	builder := qb.Select("*").
		From("scout_profiles").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scout profiles query: %w", err)
	}

	var rows []scoutProfileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scout profiles: %w", err)
	}

	out := make([]profile.ScoutProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoutProfileFromRow(row))
	}

	return out, nil
}
