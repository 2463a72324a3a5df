package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
	qb "github.com/scoutbook/scoutbook/internal/platform/querybuilder"
)

type PlayerProfileRepository struct {
	db *sqlx.DB
}

func NewPlayerProfileRepository(db *sqlx.DB) *PlayerProfileRepository {
	return &PlayerProfileRepository{db: db}
}

func (r *PlayerProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.PlayerProfile, bool, error) {
	query, args, err := qb.Select("*").
		From("player_profiles").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return profile.PlayerProfile{}, false, fmt.Errorf("build get player profile query: %w", err)
	}

	var row playerProfileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.PlayerProfile{}, false, nil
		}
		return profile.PlayerProfile{}, false, fmt.Errorf("get player profile: %w", err)
	}

	return playerProfileFromRow(row), true, nil
}

// Insert creates the row unless one already exists for the user; the
// conflict target makes concurrent first loads converge on a single row.
// The stored row is returned either way.
func (r *PlayerProfileRepository) Insert(ctx context.Context, record profile.PlayerProfile) (profile.PlayerProfile, error) {
	const insertQuery = `
INSERT INTO player_profiles (
    user_id, first_name, last_name, bio, position, preferred_foot,
    nationality, date_of_birth, height_cm, weight_kg, current_team,
    goals, assists, matches_played, speed, jumping, endurance,
    acceleration, defense, career_description, palmares, instagram_url,
    twitter_url, tiktok_url, agent_name, agent_email, agent_phone,
    photo_url, video_highlights
) VALUES (
    :user_id, :first_name, :last_name, :bio, :position, :preferred_foot,
    :nationality, :date_of_birth, :height_cm, :weight_kg, :current_team,
    :goals, :assists, :matches_played, :speed, :jumping, :endurance,
    :acceleration, :defense, :career_description, :palmares, :instagram_url,
    :twitter_url, :tiktok_url, :agent_name, :agent_email, :agent_phone,
    :photo_url, :video_highlights
)
ON CONFLICT (user_id) WHERE deleted_at IS NULL
DO NOTHING`

	insertSQL, insertArgs, err := sqlx.Named(insertQuery, playerProfileNamedArgs(record))
	if err != nil {
		return profile.PlayerProfile{}, fmt.Errorf("bind insert player profile query: %w", err)
	}
	insertSQL = r.db.Rebind(insertSQL)

	if _, err := r.db.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return profile.PlayerProfile{}, fmt.Errorf("insert player profile: %w", err)
	}

	stored, exists, err := r.GetByUserID(ctx, record.UserID)
	if err != nil {
		return profile.PlayerProfile{}, err
	}
	if !exists {
		return profile.PlayerProfile{}, fmt.Errorf("insert player profile: row missing after insert")
	}

	return stored, nil
}

func (r *PlayerProfileRepository) Update(ctx context.Context, record profile.PlayerProfile) error {
	const updateQuery = `
UPDATE player_profiles SET
    first_name = :first_name,
    last_name = :last_name,
    bio = :bio,
    position = :position,
    preferred_foot = :preferred_foot,
    nationality = :nationality,
    date_of_birth = :date_of_birth,
    height_cm = :height_cm,
    weight_kg = :weight_kg,
    current_team = :current_team,
    goals = :goals,
    assists = :assists,
    matches_played = :matches_played,
    speed = :speed,
    jumping = :jumping,
    endurance = :endurance,
    acceleration = :acceleration,
    defense = :defense,
    career_description = :career_description,
    palmares = :palmares,
    instagram_url = :instagram_url,
    twitter_url = :twitter_url,
    tiktok_url = :tiktok_url,
    agent_name = :agent_name,
    agent_email = :agent_email,
    agent_phone = :agent_phone,
    photo_url = :photo_url,
    video_highlights = :video_highlights,
    updated_at = NOW()
WHERE user_id = :user_id
  AND deleted_at IS NULL`

	updateSQL, updateArgs, err := sqlx.Named(updateQuery, playerProfileNamedArgs(record))
	if err != nil {
		return fmt.Errorf("bind update player profile query: %w", err)
	}
	updateSQL = r.db.Rebind(updateSQL)

	if _, err := r.db.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
		return fmt.Errorf("update player profile: %w", err)
	}

	return nil
}

func (r *PlayerProfileRepository) List(ctx context.Context, limit int) ([]profile.PlayerProfile, error) {
	builder := qb.Select("*").
		From("player_profiles").
		Where(qb.IsNull("deleted_at")).
		OrderBy("created_at DESC")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player profiles query: %w", err)
	}

	var rows []playerProfileTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player profiles: %w", err)
	}

	out := make([]profile.PlayerProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerProfileFromRow(row))
	}

	return out, nil
}
