package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/scoutbook/scoutbook/internal/domain/profile"
)

type playerProfileTableModel struct {
	ID                int64          `db:"id"`
	PublicID          string         `db:"public_id"`
	UserID            string         `db:"user_id"`
	FirstName         sql.NullString `db:"first_name"`
	LastName          sql.NullString `db:"last_name"`
	Bio               sql.NullString `db:"bio"`
	Position          sql.NullString `db:"position"`
	PreferredFoot     sql.NullString `db:"preferred_foot"`
	Nationality       sql.NullString `db:"nationality"`
	DateOfBirth       sql.NullString `db:"date_of_birth"`
	HeightCM          sql.NullInt64  `db:"height_cm"`
	WeightKG          sql.NullInt64  `db:"weight_kg"`
	CurrentTeam       sql.NullString `db:"current_team"`
	Goals             sql.NullInt64  `db:"goals"`
	Assists           sql.NullInt64  `db:"assists"`
	MatchesPlayed     sql.NullInt64  `db:"matches_played"`
	Speed             sql.NullInt64  `db:"speed"`
	Jumping           sql.NullInt64  `db:"jumping"`
	Endurance         sql.NullInt64  `db:"endurance"`
	Acceleration      sql.NullInt64  `db:"acceleration"`
	Defense           sql.NullInt64  `db:"defense"`
	CareerDescription sql.NullString `db:"career_description"`
	Palmares          sql.NullString `db:"palmares"`
	InstagramURL      sql.NullString `db:"instagram_url"`
	TwitterURL        sql.NullString `db:"twitter_url"`
	TikTokURL         sql.NullString `db:"tiktok_url"`
	AgentName         sql.NullString `db:"agent_name"`
	AgentEmail        sql.NullString `db:"agent_email"`
	AgentPhone        sql.NullString `db:"agent_phone"`
	PhotoURL          sql.NullString `db:"photo_url"`
	VideoHighlights   pq.StringArray `db:"video_highlights"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}

func playerProfileFromRow(row playerProfileTableModel) profile.PlayerProfile {
	return profile.PlayerProfile{
		ID:                row.PublicID,
		UserID:            row.UserID,
		FirstName:         row.FirstName.String,
		LastName:          row.LastName.String,
		Bio:               row.Bio.String,
		Position:          row.Position.String,
		PreferredFoot:     row.PreferredFoot.String,
		Nationality:       row.Nationality.String,
		DateOfBirth:       row.DateOfBirth.String,
		HeightCM:          int(row.HeightCM.Int64),
		WeightKG:          int(row.WeightKG.Int64),
		CurrentTeam:       row.CurrentTeam.String,
		Goals:             int(row.Goals.Int64),
		Assists:           int(row.Assists.Int64),
		MatchesPlayed:     int(row.MatchesPlayed.Int64),
		Speed:             int(row.Speed.Int64),
		Jumping:           int(row.Jumping.Int64),
		Endurance:         int(row.Endurance.Int64),
		Acceleration:      int(row.Acceleration.Int64),
		Defense:           int(row.Defense.Int64),
		CareerDescription: row.CareerDescription.String,
		Palmares:          row.Palmares.String,
		InstagramURL:      row.InstagramURL.String,
		TwitterURL:        row.TwitterURL.String,
		TikTokURL:         row.TikTokURL.String,
		AgentName:         row.AgentName.String,
		AgentEmail:        row.AgentEmail.String,
		AgentPhone:        row.AgentPhone.String,
		PhotoURL:          row.PhotoURL.String,
		VideoHighlights:   append([]string(nil), row.VideoHighlights...),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func playerProfileNamedArgs(record profile.PlayerProfile) map[string]any {
	return map[string]any{
		"user_id":            record.UserID,
		"first_name":         record.FirstName,
		"last_name":          record.LastName,
		"bio":                record.Bio,
		"position":           record.Position,
		"preferred_foot":     record.PreferredFoot,
		"nationality":        record.Nationality,
		"date_of_birth":      record.DateOfBirth,
		"height_cm":          record.HeightCM,
		"weight_kg":          record.WeightKG,
		"current_team":       record.CurrentTeam,
		"goals":              record.Goals,
		"assists":            record.Assists,
		"matches_played":     record.MatchesPlayed,
		"speed":              record.Speed,
		"jumping":            record.Jumping,
		"endurance":          record.Endurance,
		"acceleration":       record.Acceleration,
		"defense":            record.Defense,
		"career_description": record.CareerDescription,
		"palmares":           record.Palmares,
		"instagram_url":      record.InstagramURL,
		"twitter_url":        record.TwitterURL,
		"tiktok_url":         record.TikTokURL,
		"agent_name":         record.AgentName,
		"agent_email":        record.AgentEmail,
		"agent_phone":        record.AgentPhone,
		"photo_url":          record.PhotoURL,
		"video_highlights":   pq.Array(record.VideoHighlights),
	}
}
