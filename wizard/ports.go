package wizard

import (
	"context"
	"time"

	"github.com/ngoclaithe/camerental/domain/customer"
	"github.com/ngoclaithe/camerental/domain/equipment"
	"github.com/ngoclaithe/camerental/domain/order"
	"github.com/ngoclaithe/camerental/domain/schedule"

	"github.com/google/uuid"
)

// Ports the wizard pulls data through. The rest client satisfies all of them;
// tests substitute mocks.

type CustomerDirectory interface {
	List(ctx context.Context) ([]customer.Customer, error)
	Create(ctx context.Context, form customer.Form) (*customer.Customer, error)
}

type EquipmentCatalog interface {
	List(ctx context.Context) ([]equipment.Equipment, error)
}

type AvailabilityReader interface {
	Availability(ctx context.Context, from, to time.Time) ([]schedule.EquipmentAvailability, error)
}

type OrderPlacer interface {
	Create(ctx context.Context, draft *order.DraftOrder, idempotencyKey uuid.UUID) (*order.View, error)
}
