package auth

import "github.com/hoteldesk/hoteldesk/internal/shared"

// User mirrors the upstream identity payload. Accounts are server-owned;
// this is a transient copy cached in the session for the token's lifetime.
type User struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Phone         string            `json:"phone"`
	Role          string            `json:"role,omitempty"`
	Hotel         *shared.HotelRef  `json:"hotel,omitempty"`
	ManagedHotels []shared.HotelRef `json:"managed_hotels,omitempty"`
}

// EffectiveRole returns the explicit role when upstream provides one, and
// otherwise derives it from the hotel relation the account carries.
func (u User) EffectiveRole() string {
	if u.Role != "" {
		return u.Role
	}
	if len(u.ManagedHotels) > 0 {
		return shared.RoleManager
	}
	if u.Hotel != nil {
		return shared.RoleStaff
	}
	return shared.RoleAdmin
}

// Identity converts the user into the request-scoped identity shape.
func (u User) Identity() *shared.Identity {
	return &shared.Identity{
		ID:     u.ID,
		Name:   u.Name,
		Phone:  u.Phone,
		Role:   u.EffectiveRole(),
		Hotel:  u.Hotel,
		Hotels: u.ManagedHotels,
	}
}
