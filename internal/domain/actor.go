package domain

// Actor is the authenticated principal extracted from an access token.
type Actor struct {
	UserID   int64
	Username string
	Roles    []string
}

func (a Actor) HasRole(role UserRole) bool {
	for _, r := range a.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

func (a Actor) IsAdmin() bool {
	return a.HasRole(RoleAdmin)
}

// CanAccess reports whether the actor may touch a row owned by ownerID.
// Admins see everything; everyone else only their own rows.
func (a Actor) CanAccess(ownerID int64) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
