package rest

import (
	"context"
	"net/http"

	"github.com/ngoclaithe/camerental/domain/user"
)

type UserService struct {
	client *Client
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	var dtos []userDTO
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, &dtos); err != nil {
		return nil, err
	}
	users := make([]user.User, 0, len(dtos))
	for _, dto := range dtos {
		u, err := toUser(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, form user.Form) (*user.User, error) {
	if form.Role == "" {
		form.Role = user.RoleStaff
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var dto userDTO
	if err := s.client.do(ctx, http.MethodPost, "/users", fromUserForm(form), &dto); err != nil {
		return nil, err
	}
	return toUser(dto)
}
