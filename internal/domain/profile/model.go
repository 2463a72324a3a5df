package profile

import (
	"fmt"
	"strings"
	"time"
)

// Record is the shape shared by both profile variants. Clone must return a
// deep copy so drafts never alias the loaded record's slices.
type Record[T any] interface {
	Owner() string
	Clone() T
}

// PlayerProfile is the player-variant profile row, one per user.
type PlayerProfile struct {
	ID                string
	UserID            string
	FirstName         string
	LastName          string
	Bio               string
	Position          string
	PreferredFoot     string
	Nationality       string
	DateOfBirth       string
	HeightCM          int
	WeightKG          int
	CurrentTeam       string
	Goals             int
	Assists           int
	MatchesPlayed     int
	Speed             int
	Jumping           int
	Endurance         int
	Acceleration      int
	Defense           int
	CareerDescription string
	Palmares          string
	InstagramURL      string
	TwitterURL        string
	TikTokURL         string
	AgentName         string
	AgentEmail        string
	AgentPhone        string
	PhotoURL          string
	VideoHighlights   []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p PlayerProfile) Owner() string { return p.UserID }

func (p PlayerProfile) Clone() PlayerProfile {
	copied := p
	copied.VideoHighlights = append([]string(nil), p.VideoHighlights...)
	return copied
}

func (p PlayerProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ScoutProfile is the scout-variant profile row, one per user.
type ScoutProfile struct {
	ID            string
	UserID        string
	FirstName     string
	LastName      string
	Bio           string
	Country       string
	Organization  string
	Title         string
	Skills        []string
	PhotoURL      string
	CoverPhotoURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p ScoutProfile) Owner() string { return p.UserID }

func (p ScoutProfile) Clone() ScoutProfile {
	copied := p
	copied.Skills = append([]string(nil), p.Skills...)
	return copied
}

func (p ScoutProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Variant is the record-shape capability that parameterizes the generic
// profile sync flow: a display name and a factory for the empty record
// created on first owner load.
type Variant[T Record[T]] struct {
	Name  string
	Empty func(userID string) T
}

func PlayerVariant() Variant[PlayerProfile] {
	return Variant[PlayerProfile]{
		Name: "player",
		Empty: func(userID string) PlayerProfile {
			return PlayerProfile{UserID: userID}
		},
	}
}

func ScoutVariant() Variant[ScoutProfile] {
	return Variant[ScoutProfile]{
		Name: "scout",
		Empty: func(userID string) ScoutProfile {
			return ScoutProfile{UserID: userID}
		},
	}
}

func (v Variant[T]) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("variant name is required")
	}
	if v.Empty == nil {
		return fmt.Errorf("variant empty factory is required")
	}

	return nil
}

// Lines splits a newline-delimited text field into its non-empty rows, the
// way bio/palmares fields are rendered.
func Lines(text string) []string {
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, part)
	}

	return out
}
