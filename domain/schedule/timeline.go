package schedule

import (
	"time"

	"github.com/ngoclaithe/camerental/domain/order"
)

// Bar is a booking positioned on a month grid: offset of its first visible
// day from the month start and its visible length, both in whole days.
type Bar struct {
	Booking      Booking
	OffsetDays   int
	DurationDays int
}

// MonthBars clips the bookings of one equipment row to the given month.
// Bookings that span the month boundary are clamped to it; bookings wholly
// outside are dropped.
func MonthBars(avail EquipmentAvailability, month time.Time) []Bar {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	monthEnd := order.EndOfDay(monthStart.AddDate(0, 1, -1))

	var bars []Bar
	for _, b := range avail.Bookings {
		if b.StartDate.After(monthEnd) || b.EndDate.Before(monthStart) {
			continue
		}

		visibleStart := b.StartDate
		if visibleStart.Before(monthStart) {
			visibleStart = monthStart
		}
		visibleEnd := b.EndDate
		if visibleEnd.After(monthEnd) {
			visibleEnd = monthEnd
		}

		offset := wholeDays(monthStart, visibleStart)
		duration := wholeDays(visibleStart, visibleEnd) + 1
		bars = append(bars, Bar{
			Booking:      b,
			OffsetDays:   offset,
			DurationDays: duration,
		})
	}
	return bars
}

// OnDay filters each equipment row down to the bookings active on the given
// day. Rows with no active booking keep an empty slice so the caller can
// still render them as free.
func OnDay(availabilities []EquipmentAvailability, day time.Time) []EquipmentAvailability {
	dayStart := order.StartOfDay(day)
	dayEnd := order.EndOfDay(day)

	out := make([]EquipmentAvailability, 0, len(availabilities))
	for _, avail := range availabilities {
		row := EquipmentAvailability{
			EquipmentID:   avail.EquipmentID,
			EquipmentName: avail.EquipmentName,
		}
		for _, b := range avail.Bookings {
			if dayStart.After(b.EndDate) || dayEnd.Before(b.StartDate) {
				continue
			}
			row.Bookings = append(row.Bookings, b)
		}
		out = append(out, row)
	}
	return out
}

func wholeDays(from, to time.Time) int {
	return int(order.StartOfDay(to).Sub(order.StartOfDay(from)).Hours() / 24)
}
