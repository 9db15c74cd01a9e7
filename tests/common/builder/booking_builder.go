//go:build unit

package builder

import (
	"time"

	"github.com/ngoclaithe/camerental/domain/order"
	"github.com/ngoclaithe/camerental/domain/schedule"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	OrderID      uuid.UUID
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
	Status       order.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		OrderID:      uuid.New(),
		CustomerName: "Nguyen Van A",
		StartDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:       order.StatusConfirmed,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithStatus(status order.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) Build() schedule.Booking {
	return schedule.Booking{
		OrderID:      b.OrderID,
		CustomerName: b.CustomerName,
		StartDate:    b.StartDate,
		EndDate:      b.EndDate,
		Status:       b.Status,
	}
}

type AvailabilityBuilder struct {
	EquipmentID   uuid.UUID
	EquipmentName string
	Bookings      []schedule.Booking
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		EquipmentID:   uuid.New(),
		EquipmentName: "Sony A7 IV",
	}
}

func (a *AvailabilityBuilder) WithEquipment(id uuid.UUID, name string) *AvailabilityBuilder {
	a.EquipmentID = id
	a.EquipmentName = name
	return a
}

func (a *AvailabilityBuilder) WithBooking(b schedule.Booking) *AvailabilityBuilder {
	a.Bookings = append(a.Bookings, b)
	return a
}

func (a *AvailabilityBuilder) Build() schedule.EquipmentAvailability {
	return schedule.EquipmentAvailability{
		EquipmentID:   a.EquipmentID,
		EquipmentName: a.EquipmentName,
		Bookings:      a.Bookings,
	}
}
