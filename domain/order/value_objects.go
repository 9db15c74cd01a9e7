package order

import (
	"fmt"
	"time"
)

// Money is an amount in Vietnamese đồng. The shop prices whole đồng, so there
// is no sub-unit.
type Money struct {
	vnd int64
}

func NewMoney(vnd int64) Money {
	return Money{vnd: vnd}
}

func (m Money) VND() int64 {
	return m.vnd
}

func (m Money) Add(other Money) Money {
	return Money{vnd: m.vnd + other.vnd}
}

func (m Money) Sub(other Money) Money {
	return Money{vnd: m.vnd - other.vnd}
}

func (m Money) MulDays(days int) Money {
	return Money{vnd: m.vnd * int64(days)}
}

func (m Money) IsZero() bool {
	return m.vnd == 0
}

func (m Money) IsNegative() bool {
	return m.vnd < 0
}

func (m Money) String() string {
	return fmt.Sprintf("%d₫", m.vnd)
}

// RentalPeriod is a pair of calendar dates. Unlike the bookings it is checked
// against, it carries day precision only; times within the day are ignored.
//
// An inverted or same-day pair is not an error: it still bills as one day, so
// construction never fails and Days never returns less than 1.
type RentalPeriod struct {
	start time.Time
	end   time.Time
}

func NewRentalPeriod(start, end time.Time) RentalPeriod {
	return RentalPeriod{start: start, end: end}
}

func (p RentalPeriod) Start() time.Time {
	return p.start
}

func (p RentalPeriod) End() time.Time {
	return p.end
}

func (p RentalPeriod) IsZero() bool {
	return p.start.IsZero() || p.end.IsZero()
}

// Days is the ceiling of the calendar-day difference between start and end,
// floored at 1.
func (p RentalPeriod) Days() int {
	start := StartOfDay(p.start)
	end := StartOfDay(p.end)

	hours := end.Sub(start).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
