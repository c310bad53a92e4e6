package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hoteldesk/hoteldesk/internal/shared"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

// Hydrate resolves the session token into an identity before handlers run.
// A session with a cached identity snapshot skips the upstream round trip;
// one with a token but no snapshot calls /auth/me once and caches the result.
// A dead token clears the session so the visitor lands back on login instead
// of hitting repeated upstream 401s.
func Hydrate(logger *slog.Logger, service *Service, sessions *shared.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := shared.SessionFromContext(r.Context())
			if sess == nil || sess.Token() == "" {
				next.ServeHTTP(w, r)
				return
			}

			if raw := sess.Identity(); raw != nil {
				var user User
				if err := json.Unmarshal(raw, &user); err == nil {
					ctx := shared.ContextWithIdentity(r.Context(), user.Identity())
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				// Unreadable snapshot: fall through and re-resolve.
			}

			user, err := service.Identity(r.Context(), sess.Token())
			if err != nil {
				var apiErr *upstream.APIError
				if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
					sess.Clear()
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("identity bootstrap", slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}

			if raw, err := json.Marshal(user); err == nil {
				sess.SetIdentity(raw)
			}
			sess.SetRole(user.EffectiveRole())
			ctx := shared.ContextWithIdentity(r.Context(), user.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
