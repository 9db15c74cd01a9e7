// Package schedule holds the read-only booking snapshots fetched from the
// calendar endpoint and the conflict arithmetic that runs on top of them.
// Nothing here performs network calls; the snapshots are already in memory
// when a check runs.
package schedule

import (
	"time"

	"github.com/ngoclaithe/camerental/domain/order"

	"github.com/google/uuid"
)

// Booking is one existing reservation of a single equipment item inside the
// queried window. It is never mutated locally.
type Booking struct {
	OrderID      uuid.UUID
	CustomerName string
	StartDate    time.Time
	EndDate      time.Time
	Status       order.Status
}

// EquipmentAvailability is the calendar row for one equipment item: the item
// identity plus its bookings inside the queried window.
type EquipmentAvailability struct {
	EquipmentID   uuid.UUID
	EquipmentName string
	Bookings      []Booking
}

// DefaultLookaheadDays is how far forward from today the wizard queries the
// calendar when populating the conflict checker.
const DefaultLookaheadDays = 60

// Window is the [start of today, today+days] range used as the availability
// query for the conflict checker. Non-positive days falls back to the
// default lookahead.
func Window(now time.Time, days int) (from, to time.Time) {
	if days <= 0 {
		days = DefaultLookaheadDays
	}
	from = order.StartOfDay(now)
	to = from.AddDate(0, 0, days)
	return from, to
}
