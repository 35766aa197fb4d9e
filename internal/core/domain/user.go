package domain

import "time"

// Role is the marketplace role of a user.
type Role string

const (
	RoleClient Role = "client" // advertiser running campaigns
	RoleOwner  Role = "owner"  // billboard owner
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account. PasswordHash never leaves the
// service layer; use Public to build a response.
type User struct {
	ID               int64
	Name             string
	Email            string
	PasswordHash     string
	Role             Role
	ProfileImage     *string
	TotalRevenue     float64 // accumulated by paid invoices on owned billboards
	TotalSpend       float64 // accumulated by paid invoices on client bookings
	TotalImpressions int64
	CreatedAt        time.Time
}

// PublicUser is the projection of a User that may be returned to callers.
type PublicUser struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Role             Role    `json:"role"`
	ProfileImage     *string `json:"profileImage"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalSpend       float64 `json:"totalSpend"`
	TotalImpressions int64   `json:"totalImpressions"`
}

// Public returns the user without credentials.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		ProfileImage:     u.ProfileImage,
		TotalRevenue:     u.TotalRevenue,
		TotalSpend:       u.TotalSpend,
		TotalImpressions: u.TotalImpressions,
	}
}
