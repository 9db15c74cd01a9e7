//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"github.com/ngoclaithe/camerental/domain/order"
	"github.com/ngoclaithe/camerental/domain/schedule"
	"github.com/ngoclaithe/camerental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mar(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestCheck(t *testing.T) {
	equipmentID := uuid.New()
	// Existing booking occupies 2024-03-10 through 2024-03-15.
	avail := builder.NewAvailabilityBuilder().
		WithEquipment(equipmentID, "Sony A7 IV").
		WithBooking(builder.NewBookingBuilder().Build()).
		Build()

	t.Run("boundary days", func(t *testing.T) {
		tests := []struct {
			name     string
			start    time.Time
			end      time.Time
			conflict bool
		}{
			{"starting on the booking's last day overlaps", mar(15), mar(20), true},
			{"starting the day after does not", mar(16), mar(20), false},
			{"ending on the booking's first day overlaps", mar(5), mar(10), true},
			{"ending the day before does not", mar(5), mar(9), false},
			{"fully inside overlaps", mar(11), mar(12), true},
			{"fully covering overlaps", mar(1), mar(31), true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				period := order.NewRentalPeriod(tt.start, tt.end)
				report := schedule.Check(period, []uuid.UUID{equipmentID}, []schedule.EquipmentAvailability{avail})
				assert.Equal(t, tt.conflict, report.HasConflict())
			})
		}
	})

	t.Run("late-day start still overlaps a booking ending that day", func(t *testing.T) {
		period := order.NewRentalPeriod(mar(15).Add(18*time.Hour), mar(20))
		report := schedule.Check(period, []uuid.UUID{equipmentID}, []schedule.EquipmentAvailability{avail})
		assert.True(t, report.HasConflict())
	})

	t.Run("unselected equipment is ignored", func(t *testing.T) {
		period := order.NewRentalPeriod(mar(11), mar(12))
		report := schedule.Check(period, []uuid.UUID{uuid.New()}, []schedule.EquipmentAvailability{avail})
		assert.False(t, report.HasConflict())
	})

	t.Run("zero period or empty selection reports nothing", func(t *testing.T) {
		report := schedule.Check(order.RentalPeriod{}, []uuid.UUID{equipmentID}, []schedule.EquipmentAvailability{avail})
		assert.False(t, report.HasConflict())

		period := order.NewRentalPeriod(mar(11), mar(12))
		report = schedule.Check(period, nil, []schedule.EquipmentAvailability{avail})
		assert.False(t, report.HasConflict())
	})

	t.Run("every overlap blocks regardless of status", func(t *testing.T) {
		pending := builder.NewAvailabilityBuilder().
			WithEquipment(equipmentID, "Sony A7 IV").
			WithBooking(builder.NewBookingBuilder().WithStatus(order.StatusPending).Build()).
			Build()

		period := order.NewRentalPeriod(mar(11), mar(12))
		report := schedule.Check(period, []uuid.UUID{equipmentID}, []schedule.EquipmentAvailability{pending})

		require.True(t, report.HasConflict())
		assert.Empty(t, report.Hard())
		assert.Len(t, report.Notices(), 1)
	})

	t.Run("overlaps carry equipment identity and severity", func(t *testing.T) {
		renting := builder.NewAvailabilityBuilder().
			WithEquipment(equipmentID, "Sony A7 IV").
			WithBooking(builder.NewBookingBuilder().WithStatus(order.StatusRenting).Build()).
			Build()

		period := order.NewRentalPeriod(mar(11), mar(12))
		report := schedule.Check(period, []uuid.UUID{equipmentID}, []schedule.EquipmentAvailability{renting})

		require.Len(t, report.Overlaps, 1)
		overlap := report.Overlaps[0]
		assert.Equal(t, equipmentID, overlap.EquipmentID)
		assert.Equal(t, "Sony A7 IV", overlap.EquipmentName)
		assert.Equal(t, schedule.SeverityHard, overlap.Severity)
		assert.Equal(t, "Nguyen Van A", overlap.Booking.CustomerName)
	})

	t.Run("multiple selected items collect all overlaps", func(t *testing.T) {
		otherID := uuid.New()
		other := builder.NewAvailabilityBuilder().
			WithEquipment(otherID, "Canon EOS R5").
			WithBooking(builder.NewBookingBuilder().WithDates(mar(12), mar(18)).WithStatus(order.StatusLate).Build()).
			Build()

		period := order.NewRentalPeriod(mar(14), mar(16))
		report := schedule.Check(period, []uuid.UUID{equipmentID, otherID}, []schedule.EquipmentAvailability{avail, other})

		require.Len(t, report.Overlaps, 2)
		assert.Len(t, report.Hard(), 1)
		assert.Len(t, report.Notices(), 1)
	})
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, schedule.SeverityHard, schedule.SeverityOf(order.StatusRenting))
	assert.Equal(t, schedule.SeverityHard, schedule.SeverityOf(order.StatusLate))
	assert.Equal(t, schedule.SeverityNotice, schedule.SeverityOf(order.StatusPending))
	assert.Equal(t, schedule.SeverityNotice, schedule.SeverityOf(order.StatusConfirmed))
}

func TestWindow(t *testing.T) {
	now := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	t.Run("window starts at midnight today", func(t *testing.T) {
		from, to := schedule.Window(now, 60)
		assert.Equal(t, mar(10), from)
		assert.Equal(t, mar(10).AddDate(0, 0, 60), to)
	})

	t.Run("non-positive days falls back to the default", func(t *testing.T) {
		from, to := schedule.Window(now, 0)
		assert.Equal(t, schedule.DefaultLookaheadDays, int(to.Sub(from).Hours()/24))
	})
}
