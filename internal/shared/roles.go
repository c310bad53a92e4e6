package shared

import (
	"net/http"

	"github.com/hoteldesk/hoteldesk/internal/platform/httpx"
)

// Dashboard roles. The role marker travels with the session; the upstream
// backend remains the authority on what a token may actually do.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Identity is the resolved user attached to a request after the auth
// middleware hydrates the session. Hotel is set for staff accounts, Hotels
// for manager accounts.
type Identity struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Phone  string     `json:"phone"`
	Role   string     `json:"role"`
	Hotel  *HotelRef  `json:"hotel,omitempty"`
	Hotels []HotelRef `json:"managed_hotels,omitempty"`
}

// HotelRef is the minimal hotel shape carried on an identity.
type HotelRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city,omitempty"`
}

// LoginPath returns the login route a visitor of the given role set should
// be pointed at when unauthenticated.
func LoginPath(roles ...string) string {
	for _, role := range roles {
		if role == RoleAdmin {
			return "/admin/login"
		}
	}
	return "/login"
}

// RequireRoles guards a route subtree: anonymous visitors get 401 with the
// role-appropriate login path, authenticated visitors outside the allowed
// set get 403.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	loginPath := LoginPath(roles...)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := IdentityFromContext(r.Context())
			if identity == nil {
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{
					"message": "authentication required",
					"login":   loginPath,
				})
				return
			}
			if _, ok := allowed[identity.Role]; !ok {
				httpx.Problem(w, http.StatusForbidden, "Forbidden", "role not permitted for this resource")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
