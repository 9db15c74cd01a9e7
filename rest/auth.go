package rest

import (
	"context"
	"net/http"

	"github.com/ngoclaithe/camerental/domain/user"
)

// AuthService covers login, logout and the current-user probe. The session
// cookie the server sets on login lives in the client's jar; the access token
// in the body is returned so the session layer can inspect its expiry.
type AuthService struct {
	client *Client
}

func (s *AuthService) SetAuthToken(token string) {
	s.client.SetAuthToken(token)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	var resp loginResponse
	err := s.client.do(ctx, http.MethodPost, "/auth/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, "", err
	}
	u, err := toUser(resp.User)
	if err != nil {
		return nil, "", err
	}
	return u, resp.AccessToken, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (s *AuthService) Me(ctx context.Context) (*user.User, error) {
	var resp meResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return toUser(resp.User)
}
