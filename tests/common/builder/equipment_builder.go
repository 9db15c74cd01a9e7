//go:build unit

package builder

import (
	"github.com/ngoclaithe/camerental/domain/equipment"
	"github.com/ngoclaithe/camerental/domain/order"

	"github.com/google/uuid"
)

type EquipmentBuilder struct {
	ID          uuid.UUID
	Name        string
	Brand       string
	PricePerDay int64
	Status      equipment.Status
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		ID:          uuid.New(),
		Name:        "Canon EOS R5",
		Brand:       "Canon",
		PricePerDay: 500_000,
		Status:      equipment.StatusAvailable,
	}
}

func (e *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	e.Name = name
	return e
}

func (e *EquipmentBuilder) WithPricePerDay(vnd int64) *EquipmentBuilder {
	e.PricePerDay = vnd
	return e
}

func (e *EquipmentBuilder) WithStatus(status equipment.Status) *EquipmentBuilder {
	e.Status = status
	return e
}

func (e *EquipmentBuilder) Build() equipment.Equipment {
	return equipment.Equipment{
		ID:          e.ID,
		Name:        e.Name,
		Brand:       e.Brand,
		PricePerDay: order.NewMoney(e.PricePerDay),
		Status:      e.Status,
	}
}

func (e *EquipmentBuilder) BuildSelection() order.EquipmentSelection {
	return order.EquipmentSelection{
		ID:          e.ID,
		Name:        e.Name,
		PricePerDay: order.NewMoney(e.PricePerDay),
	}
}
