package checkout

import (
	"errors"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// State of a checkout: Editing -> Validating -> {Rejected, Placed}.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateRejected
	StatePlaced
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateRejected:
		return "rejected"
	case StatePlaced:
		return "placed"
	default:
		return "unknown"
	}
}

// ErrEmptyCart guards entry into checkout; the flow state is left untouched.
var ErrEmptyCart = errors.New("cannot place an order with an empty cart")

type Result struct {
	Order  *models.Order
	Errors FieldErrors
}

// Flow tracks one shopper's checkout. It is not safe for concurrent use.
type Flow struct {
	validator *Validator
	assembler *Assembler

	state  State
	errors FieldErrors
	order  *models.Order
}

func NewFlow(v *Validator, a *Assembler) *Flow {
	return &Flow{validator: v, assembler: a, state: StateEditing}
}

func (f *Flow) State() State {
	return f.state
}

// LastOrder is the order produced by the most recent successful submission.
func (f *Flow) LastOrder() (models.Order, bool) {
	if f.order == nil {
		return models.Order{}, false
	}
	return *f.order, true
}

func (f *Flow) FieldErrors() FieldErrors {
	return f.errors
}

// Submit validates info and, when it passes, assembles an order from items.
// A rejected form leaves the flow in StateRejected with the field errors; the
// next Submit starts validating again.
func (f *Flow) Submit(items []models.CartItem, info models.ShippingInfo) (Result, error) {
	if len(items) == 0 {
		return Result{}, ErrEmptyCart
	}

	f.state = StateValidating
	clean := f.validator.Sanitize(info)

	if errs := f.validator.check(clean); len(errs) > 0 {
		f.state = StateRejected
		f.errors = errs
		return Result{Errors: errs}, nil
	}

	order := f.assembler.Place(items, clean)
	f.state = StatePlaced
	f.errors = nil
	f.order = &order

	placed := order
	return Result{Order: &placed}, nil
}

// Reset returns the flow to editing, e.g. when the shopper leaves the confirmation.
func (f *Flow) Reset() {
	f.state = StateEditing
	f.errors = nil
}
