package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ngoclaithe/camerental/domain/equipment"

	"github.com/google/uuid"
)

type EquipmentService struct {
	client *Client
}

func (s *EquipmentService) List(ctx context.Context) ([]equipment.Equipment, error) {
	var dtos []equipmentDTO
	if err := s.client.do(ctx, http.MethodGet, "/equipments", nil, &dtos); err != nil {
		return nil, err
	}
	items := make([]equipment.Equipment, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toEquipment(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, nil
}

func (s *EquipmentService) Get(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	var dto equipmentDTO
	if err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("/equipments/%s", id), nil, &dto); err != nil {
		return nil, err
	}
	return toEquipment(dto)
}

func (s *EquipmentService) Create(ctx context.Context, form equipment.Form) (*equipment.Equipment, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var dto equipmentDTO
	if err := s.client.do(ctx, http.MethodPost, "/equipments", fromEquipmentForm(form), &dto); err != nil {
		return nil, err
	}
	return toEquipment(dto)
}

func (s *EquipmentService) Update(ctx context.Context, id uuid.UUID, form equipment.Form) (*equipment.Equipment, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	var dto equipmentDTO
	if err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/equipments/%s", id), fromEquipmentForm(form), &dto); err != nil {
		return nil, err
	}
	return toEquipment(dto)
}

func (s *EquipmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/equipments/%s", id), nil, nil)
}
