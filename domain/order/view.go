package order

import (
	"time"

	"github.com/google/uuid"
)

// View is a persisted order as the API returns it: a flat read model for the
// orders list and the dashboard, never mutated locally.
type View struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	CustomerName   string
	EquipmentIDs   []uuid.UUID
	EquipmentNames []string
	StartDate      time.Time
	EndDate        time.Time
	TotalDays      int
	PricePerDay    Money
	Deposit        Money
	Discount       Money
	TotalAmount    Money
	Status         Status
	Note           string
	CreatedAt      time.Time
}
