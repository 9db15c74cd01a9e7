package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ngoclaithe/camerental/domain/order"

	"github.com/google/uuid"
)

type OrderService struct {
	client *Client
}

func (s *OrderService) List(ctx context.Context) ([]order.View, error) {
	var dtos []orderDTO
	if err := s.client.do(ctx, http.MethodGet, "/orders", nil, &dtos); err != nil {
		return nil, err
	}
	views := make([]order.View, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toOrderView(dto)
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Create submits the finished draft. The idempotency key makes an accidental
// double submit replay instead of duplicating the order; the caller keeps the
// key across resubmits of the same draft.
func (s *OrderService) Create(ctx context.Context, draft *order.DraftOrder, idempotencyKey uuid.UUID) (*order.View, error) {
	var dto orderDTO
	err := s.client.do(ctx, http.MethodPost, "/orders", fromDraftOrder(draft), &dto,
		withHeader("Idempotency-Key", idempotencyKey.String()))
	if err != nil {
		return nil, err
	}
	return toOrderView(dto)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) (*order.View, error) {
	if !status.IsValid() {
		return nil, order.ErrInvalidStatus
	}
	var dto orderDTO
	err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/orders/%s/status", id), updateOrderStatusRequest{Status: status.String()}, &dto)
	if err != nil {
		return nil, err
	}
	return toOrderView(dto)
}
