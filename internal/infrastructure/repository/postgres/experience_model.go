package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
)

type experienceTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	UserID       string         `db:"user_id"`
	Organization string         `db:"organization"`
	Role         sql.NullString `db:"role"`
	Location     sql.NullString `db:"location"`
	StartDate    sql.NullString `db:"start_date"`
	EndDate      sql.NullString `db:"end_date"`
	Description  sql.NullString `db:"description"`
	Skills       pq.StringArray `db:"skills"`
	SortOrder    int            `db:"sort_order"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

func experienceFromRow(row experienceTableModel) experience.Experience {
	return experience.Experience{
		ID:           row.PublicID,
		UserID:       row.UserID,
		Organization: row.Organization,
		Role:         row.Role.String,
		Location:     row.Location.String,
		StartDate:    row.StartDate.String,
		EndDate:      row.EndDate.String,
		Description:  row.Description.String,
		Skills:       append([]string(nil), row.Skills...),
		SortOrder:    row.SortOrder,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func experienceNamedArgs(entry experience.Experience) map[string]any {
	return map[string]any{
		"public_id":    entry.ID,
		"user_id":      entry.UserID,
		"organization": entry.Organization,
		"role":         entry.Role,
		"location":     entry.Location,
		"start_date":   entry.StartDate,
		"end_date":     entry.EndDate,
		"description":  entry.Description,
		"skills":       pq.Array(entry.Skills),
		"sort_order":   entry.SortOrder,
	}
}
