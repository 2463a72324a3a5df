package httpapi

import (
	"context"
	"time"

	"github.com/scoutbook/scoutbook/internal/domain/experience"
	"github.com/scoutbook/scoutbook/internal/domain/profile"
	"github.com/scoutbook/scoutbook/internal/usecase"
)

type playerProfileDTO struct {
	UserID            string   `json:"userId"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Bio               string   `json:"bio"`
	Position          string   `json:"position"`
	PreferredFoot     string   `json:"preferredFoot"`
	Nationality       string   `json:"nationality"`
	DateOfBirth       string   `json:"dateOfBirth"`
	HeightCM          int      `json:"heightCm"`
	WeightKG          int      `json:"weightKg"`
	CurrentTeam       string   `json:"currentTeam"`
	Goals             int      `json:"goals"`
	Assists           int      `json:"assists"`
	MatchesPlayed     int      `json:"matchesPlayed"`
	Speed             int      `json:"speed"`
	Jumping           int      `json:"jumping"`
	Endurance         int      `json:"endurance"`
	Acceleration      int      `json:"acceleration"`
	Defense           int      `json:"defense"`
	CareerDescription string   `json:"careerDescription"`
	Palmares          string   `json:"palmares"`
	InstagramURL      string   `json:"instagramUrl"`
	TwitterURL        string   `json:"twitterUrl"`
	TikTokURL         string   `json:"tiktokUrl"`
	AgentName         string   `json:"agentName"`
	AgentEmail        string   `json:"agentEmail"`
	AgentPhone        string   `json:"agentPhone"`
	PhotoURL          string   `json:"photoUrl"`
	VideoHighlights   []string `json:"videoHighlights"`
	UpdatedAtUTC      string   `json:"updatedAtUtc"`
}

type scoutProfileDTO struct {
	UserID        string   `json:"userId"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Bio           string   `json:"bio"`
	Country       string   `json:"country"`
	Organization  string   `json:"organization"`
	Title         string   `json:"title"`
	Skills        []string `json:"skills"`
	PhotoURL      string   `json:"photoUrl"`
	CoverPhotoURL string   `json:"coverPhotoUrl"`
	UpdatedAtUTC  string   `json:"updatedAtUtc"`
}

type experienceDTO struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
	SortOrder    int      `json:"sortOrder"`
}

type scoutListingDTO struct {
	Profile     scoutProfileDTO `json:"profile"`
	Experiences []experienceDTO `json:"experiences"`
}

type mediaUploadDTO struct {
	URL string `json:"url"`
}

type mediaSweepDTO struct {
	UsersScanned int                 `json:"usersScanned"`
	Deleted      int                 `json:"deleted"`
	Kept         int                 `json:"kept"`
	Failed       int                 `json:"failed"`
	DryRun       bool                `json:"dryRun"`
	Users        []mediaSweepUserDTO `json:"users"`
}

type mediaSweepUserDTO struct {
	UserID     string `json:"userId"`
	Deleted    int    `json:"deleted"`
	Kept       int    `json:"kept"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type savePlayerProfileRequest struct {
	FirstName         string   `json:"firstName" validate:"max=100"`
	LastName          string   `json:"lastName" validate:"max=100"`
	Bio               string   `json:"bio" validate:"max=4000"`
	Position          string   `json:"position" validate:"max=50"`
	PreferredFoot     string   `json:"preferredFoot" validate:"omitempty,oneof=left right both"`
	Nationality       string   `json:"nationality" validate:"max=100"`
	DateOfBirth       string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	HeightCM          int      `json:"heightCm" validate:"min=0,max=250"`
	WeightKG          int      `json:"weightKg" validate:"min=0,max=250"`
	CurrentTeam       string   `json:"currentTeam" validate:"max=200"`
	Goals             int      `json:"goals" validate:"min=0"`
	Assists           int      `json:"assists" validate:"min=0"`
	MatchesPlayed     int      `json:"matchesPlayed" validate:"min=0"`
	Speed             int      `json:"speed"`
	Jumping           int      `json:"jumping"`
	Endurance         int      `json:"endurance"`
	Acceleration      int      `json:"acceleration"`
	Defense           int      `json:"defense"`
	CareerDescription string   `json:"careerDescription" validate:"max=8000"`
	Palmares          string   `json:"palmares" validate:"max=8000"`
	InstagramURL      string   `json:"instagramUrl" validate:"omitempty,url"`
	TwitterURL        string   `json:"twitterUrl" validate:"omitempty,url"`
	TikTokURL         string   `json:"tiktokUrl" validate:"omitempty,url"`
	AgentName         string   `json:"agentName" validate:"max=200"`
	AgentEmail        string   `json:"agentEmail" validate:"omitempty,email"`
	AgentPhone        string   `json:"agentPhone" validate:"max=50"`
	PhotoURL          string   `json:"photoUrl" validate:"omitempty,url"`
	VideoHighlights   []string `json:"videoHighlights" validate:"max=20,dive,url"`
}

type saveScoutProfileRequest struct {
	FirstName     string   `json:"firstName" validate:"max=100"`
	LastName      string   `json:"lastName" validate:"max=100"`
	Bio           string   `json:"bio" validate:"max=4000"`
	Country       string   `json:"country" validate:"max=100"`
	Organization  string   `json:"organization" validate:"max=200"`
	Title         string   `json:"title" validate:"max=200"`
	Skills        []string `json:"skills" validate:"max=30,dive,max=100"`
	PhotoURL      string   `json:"photoUrl" validate:"omitempty,url"`
	CoverPhotoURL string   `json:"coverPhotoUrl" validate:"omitempty,url"`
}

type saveExperiencesRequest struct {
	Experiences []experienceRequestEntry `json:"experiences" validate:"max=50,dive"`
}

type experienceRequestEntry struct {
	ID           string   `json:"id"`
	Organization string   `json:"organization" validate:"required,max=200"`
	Role         string   `json:"role" validate:"max=200"`
	Location     string   `json:"location" validate:"max=200"`
	StartDate    string   `json:"startDate" validate:"max=50"`
	EndDate      string   `json:"endDate" validate:"max=50"`
	Description  string   `json:"description" validate:"max=4000"`
	Skills       []string `json:"skills" validate:"max=30,dive,max=100"`
}

type mediaSweepRequest struct {
	DryRun  bool `json:"dryRun"`
	Workers int  `json:"workers" validate:"min=0,max=64"`
}

// clampRating bounds the athletic ratings the way the profile editor does;
// values stay presentation-shaped rather than rejecting the whole payload.
func clampRating(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}

	return value
}

func (req savePlayerProfileRequest) toDomain(userID string) profile.PlayerProfile {
	return profile.PlayerProfile{
		UserID:            userID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Bio:               req.Bio,
		Position:          req.Position,
		PreferredFoot:     req.PreferredFoot,
		Nationality:       req.Nationality,
		DateOfBirth:       req.DateOfBirth,
		HeightCM:          req.HeightCM,
		WeightKG:          req.WeightKG,
		CurrentTeam:       req.CurrentTeam,
		Goals:             req.Goals,
		Assists:           req.Assists,
		MatchesPlayed:     req.MatchesPlayed,
		Speed:             clampRating(req.Speed),
		Jumping:           clampRating(req.Jumping),
		Endurance:         clampRating(req.Endurance),
		Acceleration:      clampRating(req.Acceleration),
		Defense:           clampRating(req.Defense),
		CareerDescription: req.CareerDescription,
		Palmares:          req.Palmares,
		InstagramURL:      req.InstagramURL,
		TwitterURL:        req.TwitterURL,
		TikTokURL:         req.TikTokURL,
		AgentName:         req.AgentName,
		AgentEmail:        req.AgentEmail,
		AgentPhone:        req.AgentPhone,
		PhotoURL:          req.PhotoURL,
		VideoHighlights:   append([]string(nil), req.VideoHighlights...),
	}
}

func (req saveScoutProfileRequest) toDomain(userID string) profile.ScoutProfile {
	return profile.ScoutProfile{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Bio:           req.Bio,
		Country:       req.Country,
		Organization:  req.Organization,
		Title:         req.Title,
		Skills:        append([]string(nil), req.Skills...),
		PhotoURL:      req.PhotoURL,
		CoverPhotoURL: req.CoverPhotoURL,
	}
}

func (req saveExperiencesRequest) toDomain() []experience.Experience {
	out := make([]experience.Experience, 0, len(req.Experiences))
	for _, entry := range req.Experiences {
		out = append(out, experience.Experience{
			ID:           entry.ID,
			Organization: entry.Organization,
			Role:         entry.Role,
			Location:     entry.Location,
			StartDate:    entry.StartDate,
			EndDate:      entry.EndDate,
			Description:  entry.Description,
			Skills:       append([]string(nil), entry.Skills...),
		})
	}

	return out
}

func playerProfileToDTO(ctx context.Context, v profile.PlayerProfile) playerProfileDTO {
	ctx, span := startSpan(ctx, "httpapi.playerProfileToDTO")
	defer span.End()

	return playerProfileDTO{
		UserID:            v.UserID,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		Bio:               v.Bio,
		Position:          v.Position,
		PreferredFoot:     v.PreferredFoot,
		Nationality:       v.Nationality,
		DateOfBirth:       v.DateOfBirth,
		HeightCM:          v.HeightCM,
		WeightKG:          v.WeightKG,
		CurrentTeam:       v.CurrentTeam,
		Goals:             v.Goals,
		Assists:           v.Assists,
		MatchesPlayed:     v.MatchesPlayed,
		Speed:             v.Speed,
		Jumping:           v.Jumping,
		Endurance:         v.Endurance,
		Acceleration:      v.Acceleration,
		Defense:           v.Defense,
		CareerDescription: v.CareerDescription,
		Palmares:          v.Palmares,
		InstagramURL:      v.InstagramURL,
		TwitterURL:        v.TwitterURL,
		TikTokURL:         v.TikTokURL,
		AgentName:         v.AgentName,
		AgentEmail:        v.AgentEmail,
		AgentPhone:        v.AgentPhone,
		PhotoURL:          v.PhotoURL,
		VideoHighlights:   append([]string(nil), v.VideoHighlights...),
		UpdatedAtUTC:      v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func scoutProfileToDTO(ctx context.Context, v profile.ScoutProfile) scoutProfileDTO {
	ctx, span := startSpan(ctx, "httpapi.scoutProfileToDTO")
	defer span.End()

	return scoutProfileDTO{
		UserID:        v.UserID,
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		Bio:           v.Bio,
		Country:       v.Country,
		Organization:  v.Organization,
		Title:         v.Title,
		Skills:        append([]string(nil), v.Skills...),
		PhotoURL:      v.PhotoURL,
		CoverPhotoURL: v.CoverPhotoURL,
		UpdatedAtUTC:  v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func experienceToDTO(ctx context.Context, v experience.Experience) experienceDTO {
	ctx, span := startSpan(ctx, "httpapi.experienceToDTO")
	defer span.End()

	return experienceDTO{
		ID:           v.ID,
		Organization: v.Organization,
		Role:         v.Role,
		Location:     v.Location,
		StartDate:    v.StartDate,
		EndDate:      v.EndDate,
		Description:  v.Description,
		Skills:       append([]string(nil), v.Skills...),
		SortOrder:    v.SortOrder,
	}
}

func experiencesToDTO(ctx context.Context, items []experience.Experience) []experienceDTO {
	out := make([]experienceDTO, 0, len(items))
	for _, item := range items {
		out = append(out, experienceToDTO(ctx, item))
	}

	return out
}

func scoutListingToDTO(ctx context.Context, v usecase.ScoutListing) scoutListingDTO {
	return scoutListingDTO{
		Profile:     scoutProfileToDTO(ctx, v.Profile),
		Experiences: experiencesToDTO(ctx, v.Experiences),
	}
}

func mediaSweepToDTO(result usecase.MediaSweepResult) mediaSweepDTO {
	users := make([]mediaSweepUserDTO, 0, len(result.Users))
	for _, row := range result.Users {
		users = append(users, mediaSweepUserDTO{
			UserID:     row.UserID,
			Deleted:    row.Deleted,
			Kept:       row.Kept,
			Status:     row.Status,
			Message:    row.Message,
			DurationMs: row.DurationMs,
		})
	}

	return mediaSweepDTO{
		UsersScanned: result.UsersScanned,
		Deleted:      result.Deleted,
		Kept:         result.Kept,
		Failed:       result.Failed,
		DryRun:       result.DryRun,
		Users:        users,
	}
}
