package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/hoteldesk/hoteldesk/internal/shared"
	"github.com/hoteldesk/hoteldesk/internal/upstream"
)

// Service wraps the upstream authentication endpoints. Credentials are never
// verified locally; the backend owns them.
type Service struct {
	api *upstream.Client
}

// NewService constructs a new Service.
func NewService(api *upstream.Client) *Service {
	return &Service{api: api}
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token via POST /auth/login.
func (s *Service) Login(ctx context.Context, phone, password string) (*User, string, error) {
	var resp loginResponse
	err := s.api.Post(ctx, "", "/auth/login", loginRequest{Phone: phone, Password: password}, &resp)
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusUnprocessableEntity) {
			return nil, "", shared.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if resp.Token == "" {
		return nil, "", shared.ErrInvalidCredentials
	}
	return &resp.User, resp.Token, nil
}

// Identity resolves the user behind a token via GET /auth/me. Callers use it
// once per session bootstrap; a failure means the token is dead and the
// session should be cleared.
func (s *Service) Identity(ctx context.Context, token string) (*User, error) {
	var user User
	if err := s.api.Get(ctx, token, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
