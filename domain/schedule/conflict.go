package schedule

import (
	"github.com/ngoclaithe/camerental/domain/order"

	"github.com/google/uuid"
)

// Severity classifies how an overlap is presented. It does not influence
// whether the overlap blocks: any overlap blocks submission, the severity
// only drives the coloring of the warning. Bookings that are already out the
// door (RENTING) or overdue (LATE) are hard; earlier-stage reservations can
// still be renegotiated and show as notices.
type Severity string

const (
	SeverityHard   Severity = "hard"
	SeverityNotice Severity = "notice"
)

func SeverityOf(s order.Status) Severity {
	switch s {
	case order.StatusRenting, order.StatusLate:
		return SeverityHard
	default:
		return SeverityNotice
	}
}

// Overlap is one existing booking that collides with the candidate period,
// tagged with the equipment it belongs to.
type Overlap struct {
	Booking       Booking
	EquipmentID   uuid.UUID
	EquipmentName string
	Severity      Severity
}

// Report is the outcome of a conflict check against one candidate period.
type Report struct {
	Overlaps []Overlap
}

// HasConflict reports whether submission must be blocked. Any overlap blocks,
// regardless of the overlapping booking's status; only the severity coloring
// distinguishes them.
func (r Report) HasConflict() bool {
	return len(r.Overlaps) > 0
}

func (r Report) Hard() []Overlap {
	return r.filter(SeverityHard)
}

func (r Report) Notices() []Overlap {
	return r.filter(SeverityNotice)
}

func (r Report) filter(sev Severity) []Overlap {
	var out []Overlap
	for _, o := range r.Overlaps {
		if o.Severity == sev {
			out = append(out, o)
		}
	}
	return out
}

// Check flattens the bookings of the selected equipment and tests each one
// against the candidate period. The candidate is widened to full days before
// comparison (start of day / end of day), and the interval test is inclusive
// on both ends, so a booking ending on the candidate's first day counts as an
// overlap.
func Check(period order.RentalPeriod, selected []uuid.UUID, availabilities []EquipmentAvailability) Report {
	if period.IsZero() || len(selected) == 0 {
		return Report{}
	}

	candStart := order.StartOfDay(period.Start())
	candEnd := order.EndOfDay(period.End())

	selectedSet := make(map[uuid.UUID]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	var report Report
	for _, avail := range availabilities {
		if _, ok := selectedSet[avail.EquipmentID]; !ok {
			continue
		}
		for _, b := range avail.Bookings {
			if candStart.After(b.EndDate) || candEnd.Before(b.StartDate) {
				continue
			}
			report.Overlaps = append(report.Overlaps, Overlap{
				Booking:       b,
				EquipmentID:   avail.EquipmentID,
				EquipmentName: avail.EquipmentName,
				Severity:      SeverityOf(b.Status),
			})
		}
	}
	return report
}
