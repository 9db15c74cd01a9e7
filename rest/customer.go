package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ngoclaithe/camerental/domain/customer"

	"github.com/google/uuid"
)

type CustomerService struct {
	client *Client
}

func (s *CustomerService) List(ctx context.Context) ([]customer.Customer, error) {
	var dtos []customerDTO
	if err := s.client.do(ctx, http.MethodGet, "/customers", nil, &dtos); err != nil {
		return nil, err
	}
	customers := make([]customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toCustomer(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, nil
}

func (s *CustomerService) Create(ctx context.Context, form customer.Form) (*customer.Customer, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var dto customerDTO
	if err := s.client.do(ctx, http.MethodPost, "/customers", fromCustomerForm(form), &dto); err != nil {
		return nil, err
	}
	return toCustomer(dto)
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, form customer.Form) (*customer.Customer, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var dto customerDTO
	if err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/customers/%s", id), fromCustomerForm(form), &dto); err != nil {
		return nil, err
	}
	return toCustomer(dto)
}
