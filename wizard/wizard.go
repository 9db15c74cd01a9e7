// Package wizard drives the four-step order creation flow. It accumulates a
// draft order in memory and only persists it at the final step; everything
// before Submit is local state plus read-only fetches.
package wizard

import (
	"context"
	"log/slog"
	"time"

	"github.com/ngoclaithe/camerental/config"
	"github.com/ngoclaithe/camerental/domain/customer"
	"github.com/ngoclaithe/camerental/domain/equipment"
	"github.com/ngoclaithe/camerental/domain/order"
	"github.com/ngoclaithe/camerental/domain/schedule"
	"github.com/ngoclaithe/camerental/pkg/clock"
	"github.com/ngoclaithe/camerental/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerRequired  = errs.New("customer selection required")
	ErrEquipmentRequired = errs.New("equipment selection required")
	ErrPeriodRequired    = errs.New("rental period required")
	ErrBookingConflict   = errs.New("selected equipment has overlapping bookings")
	ErrAtFirstStep       = errs.New("already at first step")
	ErrAtFinalStep       = errs.New("already at final step")
	ErrWrongStep         = errs.New("operation not allowed at this step")
)

type Step int

const (
	StepCustomerSelect Step = iota + 1
	StepEquipmentAndDates
	StepPayment
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepCustomerSelect:
		return "customer"
	case StepEquipmentAndDates:
		return "equipment_and_dates"
	case StepPayment:
		return "payment"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Wizard is a single-user, single-goroutine state machine; the dashboard's
// event loop calls it one operation at a time.
type Wizard struct {
	customers CustomerDirectory
	catalog   EquipmentCatalog
	calendar  AvailabilityReader
	orders    OrderPlacer
	clock     clock.Clock
	logger    *slog.Logger
	lookahead int

	step           Step
	draft          *order.DraftOrder
	equipmentList  []equipment.Equipment
	availabilities []schedule.EquipmentAvailability
	conflicts      schedule.Report
	submitKey      uuid.UUID
}

func New(
	customers CustomerDirectory,
	catalog EquipmentCatalog,
	calendar AvailabilityReader,
	orders OrderPlacer,
	cfg config.CalendarConfig,
	clk clock.Clock,
	logger *slog.Logger,
) *Wizard {
	return &Wizard{
		customers: customers,
		catalog:   catalog,
		calendar:  calendar,
		orders:    orders,
		clock:     clk,
		logger:    logger,
		lookahead: cfg.LookaheadDays,
		step:      StepCustomerSelect,
		draft:     order.NewDraftOrder(),
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Draft() *order.DraftOrder {
	return w.draft
}

// Equipment is the selectable list fetched on entering the equipment step;
// maintenance items are already filtered out.
func (w *Wizard) Equipment() []equipment.Equipment {
	return w.equipmentList
}

func (w *Wizard) Conflicts() schedule.Report {
	return w.conflicts
}

func (w *Wizard) HasConflict() bool {
	return w.conflicts.HasConflict()
}

// Customers lists the directory for the selection step; filtering by the
// search box happens on the caller's side via customer.Matches.
func (w *Wizard) Customers(ctx context.Context) ([]customer.Customer, error) {
	return w.customers.List(ctx)
}

func (w *Wizard) SelectCustomer(c customer.Customer) {
	w.draft.SelectCustomer(c.ID, c.Name)
}

// CreateCustomer registers a walk-in customer and selects them in one move.
// Validation failures never reach the network.
func (w *Wizard) CreateCustomer(ctx context.Context, form customer.Form) (*customer.Customer, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	created, err := w.customers.Create(ctx, form)
	if err != nil {
		return nil, err
	}
	w.draft.SelectCustomer(created.ID, created.Name)
	return created, nil
}

// CanAdvance reports why the forward control is disabled, or nil when the
// current step's guard is satisfied.
func (w *Wizard) CanAdvance() error {
	switch w.step {
	case StepCustomerSelect:
		if !w.draft.HasCustomer() {
			return ErrCustomerRequired
		}
	case StepEquipmentAndDates:
		if !w.draft.HasEquipment() {
			return ErrEquipmentRequired
		}
		if !w.draft.HasPeriod() {
			return ErrPeriodRequired
		}
		if w.conflicts.HasConflict() {
			return ErrBookingConflict
		}
	case StepPayment:
		// Deposit and discount default to zero; nothing to check.
	case StepConfirm:
		return ErrAtFinalStep
	}
	return nil
}

// Next advances one step after the current guard passes. Entering the
// equipment step refetches the selectable list.
func (w *Wizard) Next(ctx context.Context) error {
	if err := w.CanAdvance(); err != nil {
		return err
	}

	switch w.step {
	case StepCustomerSelect:
		w.step = StepEquipmentAndDates
		return w.refreshEquipment(ctx)
	case StepEquipmentAndDates:
		w.step = StepPayment
	case StepPayment:
		w.step = StepConfirm
		if w.submitKey == uuid.Nil {
			w.submitKey = uuid.New()
		}
	}
	return nil
}

// Back returns to the immediately preceding step. Landing back on the
// equipment step refetches the list, same as entering it forward.
func (w *Wizard) Back(ctx context.Context) error {
	if w.step == StepCustomerSelect {
		return ErrAtFirstStep
	}
	w.step--
	if w.step == StepEquipmentAndDates {
		return w.refreshEquipment(ctx)
	}
	return nil
}

// ToggleEquipment flips one item's selection and refetches the availability
// window so the conflict report reflects the new selection.
func (w *Wizard) ToggleEquipment(ctx context.Context, e equipment.Equipment) error {
	if w.step != StepEquipmentAndDates {
		return ErrWrongStep
	}
	w.draft.ToggleEquipment(order.EquipmentSelection{
		ID:          e.ID,
		Name:        e.Name,
		PricePerDay: e.PricePerDay,
	})
	return w.refreshAvailability(ctx)
}

// SetPeriod updates the candidate dates and re-runs the checker against the
// already-fetched window; date changes alone do not refetch.
func (w *Wizard) SetPeriod(start, end time.Time) error {
	if w.step != StepEquipmentAndDates {
		return ErrWrongStep
	}
	w.draft.SetPeriod(order.NewRentalPeriod(start, end))
	w.recheck()
	return nil
}

func (w *Wizard) SetDeposit(m order.Money) {
	w.draft.SetDeposit(m)
}

func (w *Wizard) SetDiscount(m order.Money) {
	w.draft.SetDiscount(m)
}

func (w *Wizard) SetNote(note string) {
	w.draft.SetNote(order.NewNote(note))
}

// Submit persists the draft. On success the wizard resets to its initial
// state and the caller navigates to the orders list with the returned view.
// On failure everything stays put so the user can resubmit manually.
func (w *Wizard) Submit(ctx context.Context) (*order.View, error) {
	if w.step != StepConfirm {
		return nil, ErrWrongStep
	}

	view, err := w.orders.Create(ctx, w.draft, w.submitKey)
	if err != nil {
		w.logger.Warn("order submission failed", "error", err)
		return nil, err
	}

	w.logger.Info("order created",
		"order_id", view.ID,
		"customer", view.CustomerName,
		"total", view.TotalAmount.VND(),
	)
	w.reset()
	return view, nil
}

// Cancel abandons the draft and rewinds to the first step.
func (w *Wizard) Cancel() {
	w.reset()
}

func (w *Wizard) reset() {
	w.draft.Reset()
	w.step = StepCustomerSelect
	w.equipmentList = nil
	w.availabilities = nil
	w.conflicts = schedule.Report{}
	w.submitKey = uuid.Nil
}

func (w *Wizard) refreshEquipment(ctx context.Context) error {
	list, err := w.catalog.List(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load equipment list")
	}
	selectable := make([]equipment.Equipment, 0, len(list))
	for _, e := range list {
		if e.IsSelectable() {
			selectable = append(selectable, e)
		}
	}
	w.equipmentList = selectable
	return nil
}

func (w *Wizard) refreshAvailability(ctx context.Context) error {
	if !w.draft.HasEquipment() {
		w.availabilities = nil
		w.conflicts = schedule.Report{}
		return nil
	}

	from, to := schedule.Window(w.clock.Now(), w.lookahead)
	availabilities, err := w.calendar.Availability(ctx, from, to)
	if err != nil {
		return errs.Wrap(err, "failed to load availability window")
	}
	w.availabilities = availabilities
	w.recheck()
	return nil
}

func (w *Wizard) recheck() {
	w.conflicts = schedule.Check(w.draft.Period(), w.draft.EquipmentIDs(), w.availabilities)
}
