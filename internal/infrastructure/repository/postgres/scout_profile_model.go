package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

type scoutProfileTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	UserID        string         `db:"user_id"`
	FirstName     sql.NullString `db:"first_name"`
	LastName      sql.NullString `db:"last_name"`
	Bio           sql.NullString `db:"bio"`
	Country       sql.NullString `db:"country"`
	Organization  sql.NullString `db:"organization"`
	Title         sql.NullString `db:"title"`
	Skills        pq.StringArray `db:"skills"`
	PhotoURL      sql.NullString `db:"photo_url"`
	CoverPhotoURL sql.NullString `db:"cover_photo_url"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

func scoutProfileFromRow(row scoutProfileTableModel) profile.ScoutProfile {
	return profile.ScoutProfile{
		ID:            row.PublicID,
		UserID:        row.UserID,
		FirstName:     row.FirstName.String,
		LastName:      row.LastName.String,
		Bio:           row.Bio.String,
		Country:       row.Country.String,
		Organization:  row.Organization.String,
		Title:         row.Title.String,
		Skills:        append([]string(nil), row.Skills...),
		PhotoURL:      row.PhotoURL.String,
		CoverPhotoURL: row.CoverPhotoURL.String,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func scoutProfileNamedArgs(record profile.ScoutProfile) map[string]any {
	return map[string]any{
		"user_id":         record.UserID,
		"first_name":      record.FirstName,
		"last_name":       record.LastName,
		"bio":             record.Bio,
		"country":         record.Country,
		"organization":    record.Organization,
		"title":           record.Title,
		"skills":          pq.Array(record.Skills),
		"photo_url":       record.PhotoURL,
		"cover_photo_url": record.CoverPhotoURL,
	}
}
