package order

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid order status")
)

// EquipmentSelection is the slice of an equipment record the draft needs to
// price itself: identity plus the listed daily rate at selection time.
type EquipmentSelection struct {
	ID          uuid.UUID
	Name        string
	PricePerDay Money
}

// DraftOrder is the in-progress rental order a wizard assembles. It lives only
// in memory and is discarded on submit or cancel.
//
// Every mutation that touches equipment, dates or discount recomputes the
// total in the same call, so totalAmount == pricePerDay*days - discount holds
// between any two method calls.
type DraftOrder struct {
	customerID   uuid.UUID
	customerName string
	selections   []EquipmentSelection
	period       RentalPeriod
	days         int
	pricePerDay  Money
	deposit      Money
	discount     Money
	totalAmount  Money
	note         Note
}

func NewDraftOrder() *DraftOrder {
	return &DraftOrder{}
}

func (d *DraftOrder) SelectCustomer(id uuid.UUID, name string) {
	d.customerID = id
	d.customerName = name
}

// ToggleEquipment adds the selection when absent and removes it when present.
// Applying it twice with the same selection is a no-op.
func (d *DraftOrder) ToggleEquipment(sel EquipmentSelection) {
	for i, existing := range d.selections {
		if existing.ID == sel.ID {
			d.selections = append(d.selections[:i], d.selections[i+1:]...)
			d.pricePerDay = d.pricePerDay.Sub(existing.PricePerDay)
			d.recalculate()
			return
		}
	}
	d.selections = append(d.selections, sel)
	d.pricePerDay = d.pricePerDay.Add(sel.PricePerDay)
	d.recalculate()
}

func (d *DraftOrder) IsSelected(id uuid.UUID) bool {
	for _, sel := range d.selections {
		if sel.ID == id {
			return true
		}
	}
	return false
}

func (d *DraftOrder) SetPeriod(p RentalPeriod) {
	d.period = p
	if p.IsZero() {
		d.days = 0
	} else {
		d.days = p.Days()
	}
	d.recalculate()
}

func (d *DraftOrder) SetDeposit(m Money) {
	d.deposit = m
}

func (d *DraftOrder) SetDiscount(m Money) {
	d.discount = m
	d.recalculate()
}

func (d *DraftOrder) SetNote(n Note) {
	d.note = n
}

// Reset returns every field to its initial zero value. Called after a
// successful submit.
func (d *DraftOrder) Reset() {
	*d = DraftOrder{}
}

func (d *DraftOrder) recalculate() {
	d.totalAmount = d.pricePerDay.MulDays(d.days).Sub(d.discount)
}

func (d *DraftOrder) HasCustomer() bool {
	return d.customerID != uuid.Nil
}

func (d *DraftOrder) HasEquipment() bool {
	return len(d.selections) > 0
}

func (d *DraftOrder) HasPeriod() bool {
	return !d.period.IsZero()
}

func (d *DraftOrder) CustomerID() uuid.UUID { return d.customerID }
func (d *DraftOrder) CustomerName() string  { return d.customerName }
func (d *DraftOrder) Period() RentalPeriod  { return d.period }
func (d *DraftOrder) Days() int             { return d.days }
func (d *DraftOrder) PricePerDay() Money    { return d.pricePerDay }
func (d *DraftOrder) Deposit() Money        { return d.deposit }
func (d *DraftOrder) Discount() Money       { return d.discount }
func (d *DraftOrder) TotalAmount() Money    { return d.totalAmount }
func (d *DraftOrder) Note() Note            { return d.note }
func (d *DraftOrder) Subtotal() Money       { return d.pricePerDay.MulDays(d.days) }

func (d *DraftOrder) EquipmentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(d.selections))
	for i, sel := range d.selections {
		ids[i] = sel.ID
	}
	return ids
}

func (d *DraftOrder) EquipmentNames() []string {
	names := make([]string, len(d.selections))
	for i, sel := range d.selections {
		names[i] = sel.Name
	}
	return names
}
