package domain

// Identity is the authenticated caller. It is produced once by the auth
// middleware and passed explicitly into every service call.
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// HasRole reports whether the identity holds one of roles.
func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// Authorize is the single ownership policy shared by all services. Admins
// may act on any resource; everybody else only on resources they own.
func Authorize(id Identity, resourceOwnerID int64) error {
	if id.IsAdmin() || id.UserID == resourceOwnerID {
		return nil
	}
	return Forbidden("Forbidden")
}

// ScopeFor returns the listing scope of id: owners see rows where they are
// the owner, clients rows where they are the client, anybody else all rows.
func ScopeFor(id Identity) Scope {
	userID := id.UserID
	switch id.Role {
	case RoleOwner:
		return Scope{OwnerID: &userID}
	case RoleClient:
		return Scope{ClientID: &userID}
	}
	return Scope{}
}

// AuthorizeBooking allows id to act on b only when b falls inside the
// caller's listing scope.
func AuthorizeBooking(id Identity, b Booking) error {
	if id.HasRole(RoleAdmin, RoleOwner, RoleClient) && ScopeFor(id).Matches(b) {
		return nil
	}
	return Forbidden("Forbidden")
}
