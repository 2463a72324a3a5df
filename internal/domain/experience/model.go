package experience

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingUserID       = errors.New("experience user id is required")
	ErrMissingOrganization = errors.New("experience organization is required")
)

// Experience is one ordered entry in a scout's career history. ID is
// backend-assigned; a draft created client-side carries an empty ID until
// its first successful save.
type Experience struct {
	ID           string
	UserID       string
	Organization string
	Role         string
	Location     string
	StartDate    string
	EndDate      string
	Description  string
	Skills       []string
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Experience) Clone() Experience {
	copied := e
	copied.Skills = append([]string(nil), e.Skills...)
	return copied
}

func (e Experience) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return ErrMissingUserID
	}
	if strings.TrimSpace(e.Organization) == "" {
		return ErrMissingOrganization
	}
	if e.SortOrder < 0 {
		return fmt.Errorf("experience sort order cannot be negative")
	}

	return nil
}

func CloneList(items []Experience) []Experience {
	out := make([]Experience, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}

	return out
}
