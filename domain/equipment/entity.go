// Package equipment models the rental inventory as seen from the dashboard:
// read-only snapshots of what the API returns plus the form payloads sent
// back to it.
package equipment

import (
	"errors"
	"time"

	"github.com/ngoclaithe/camerental/domain/order"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid equipment status")
	ErrNameRequired  = errors.New("equipment name is required")
)

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusRented      Status = "RENTED"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Equipment struct {
	ID           uuid.UUID
	Name         string
	Brand        string
	SerialNumber string
	PricePerDay  order.Money
	Status       Status
	ImageURLs    []string
	CreatedAt    time.Time
}

// IsSelectable reports whether the item may appear in the wizard's equipment
// step. Items under maintenance are excluded; rented items stay listed and
// rely on the conflict checker to catch date collisions.
func (e Equipment) IsSelectable() bool {
	return e.Status != StatusMaintenance
}

// Form is the create/update payload for an equipment record. Update sends the
// same shape with only the changed fields populated server-side.
type Form struct {
	Name         string
	Brand        string
	SerialNumber string
	PricePerDay  order.Money
	Status       Status
	ImageURLs    []string
}

func (f Form) Validate() error {
	if f.Name == "" {
		return ErrNameRequired
	}
	if f.Status != "" && !f.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
