package user

// Role distinguishes the two profile variants a user can own.
type Role string

const (
	RolePlayer Role = "player"
	RoleScout  Role = "scout"
)

func (r Role) Valid() bool {
	return r == RolePlayer || r == RoleScout
}

// Principal is the acting identity attached to a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

// IsOwner reports whether the principal owns the record bound to ownerID.
func (p Principal) IsOwner(ownerID string) bool {
	return p.UserID != "" && p.UserID == ownerID
}
