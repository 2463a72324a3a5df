package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/reconcile"
	qb "github.com/scoutbook/scoutbook/internal/platform/querybuilder"
)

type ExperienceRepository struct {
	db *sqlx.DB
}

func NewExperienceRepository(db *sqlx.DB) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func (r *ExperienceRepository) ListByUser(ctx context.Context, userID string) ([]experience.Experience, error) {
	query, args, err := qb.Select("*").
		From("scout_experiences").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("sort_order ASC", "id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list experiences query: %w", err)
	}

	var rows []experienceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	out := make([]experience.Experience, 0, len(rows))
	for _, row := range rows {
		out = append(out, experienceFromRow(row))
	}

	return out, nil
}

// Reconcile applies the whole plan inside one transaction so a commit of
// the experience list is all or nothing. Deletes are soft, matching the
// rest of the schema.
func (r *ExperienceRepository) Reconcile(ctx context.Context, userID string, plan reconcile.Plan[experience.Experience]) error {
	if plan.Empty() {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for experience reconcile: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if len(plan.ToDelete) > 0 {
		const deleteQuery = `
UPDATE scout_experiences
SET deleted_at = NOW()
WHERE user_id = $1
  AND public_id = ANY($2)
  AND deleted_at IS NULL`
		if _, err := tx.ExecContext(ctx, deleteQuery, userID, pq.Array(plan.ToDelete)); err != nil {
			return fmt.Errorf("soft delete experiences: %w", err)
		}
	}

	const updateQuery = `
UPDATE scout_experiences SET
    organization = :organization,
    role = :role,
    location = :location,
    start_date = :start_date,
    end_date = :end_date,
    description = :description,
    skills = :skills,
    sort_order = :sort_order,
    updated_at = NOW()
WHERE user_id = :user_id
  AND public_id = :public_id
  AND deleted_at IS NULL`

	for _, entry := range plan.ToUpdate {
		entry.UserID = userID
		updateSQL, updateArgs, err := sqlx.Named(updateQuery, experienceNamedArgs(entry))
		if err != nil {
			return fmt.Errorf("bind update experience %s query: %w", entry.ID, err)
		}
		updateSQL = tx.Rebind(updateSQL)
		if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("update experience %s: %w", entry.ID, err)
		}
	}

	const insertQuery = `
INSERT INTO scout_experiences (
    public_id, user_id, organization, role, location,
    start_date, end_date, description, skills, sort_order
) VALUES (
    :public_id, :user_id, :organization, :role, :location,
    :start_date, :end_date, :description, :skills, :sort_order
)`

	for _, entry := range plan.ToInsert {
		entry.UserID = userID
		insertSQL, insertArgs, err := sqlx.Named(insertQuery, experienceNamedArgs(entry))
		if err != nil {
			return fmt.Errorf("bind insert experience %s query: %w", entry.ID, err)
		}
		insertSQL = tx.Rebind(insertSQL)
		if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("insert experience %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit experience reconcile tx: %w", err)
	}

	return nil
}
