package cart

import (
	"errors"
	"fmt"
)

// Step is the position in the linear checkout flow.
type Step int

const (
	StepCart Step = iota
	StepDelivery
	StepPayment
	StepConfirmation
)

var stepNames = [...]string{"Cart", "Delivery", "Payment", "Confirmation"}

func (s Step) String() string {
	if s < StepCart || s > StepConfirmation {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

func (s Step) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Step) UnmarshalText(b []byte) error {
	name := string(b)
	for i, n := range stepNames {
		if n == name {
			*s = Step(i)
			return nil
		}
	}
	return fmt.Errorf("unknown checkout step %q", name)
}

// Next moves one step forward, clamped at Confirmation. No skipping, no
// branching.
func (s Step) Next() Step {
	if s >= StepConfirmation {
		return StepConfirmation
	}
	return s + 1
}

// Prev moves one step back, clamped at Cart.
func (s Step) Prev() Step {
	if s <= StepCart {
		return StepCart
	}
	return s - 1
}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrCheckoutFinal = errors.New("checkout already completed")
)

// Session is one shopper's cart plus checkout position and favorite stores.
// All state is owned by the session; callers go through the Store so
// mutations to the same cart are serialized.
type Session struct {
	ID        string          `json:"id"`
	Cart      Cart            `json:"cart"`
	Step      Step            `json:"step"`
	OrderRef  string          `json:"order_ref,omitempty"`
	Favorites map[string]bool `json:"-"`
}

// Advance moves the checkout one step forward. Leaving the cart step with
// an empty cart is rejected. At Confirmation it is an idempotent no-op.
// Reaching Confirmation is when the caller places the order and records the
// reference on the session.
func (s *Session) Advance() error {
	if s.Step == StepConfirmation {
		return nil
	}
	if s.Step == StepCart && s.Cart.IsEmpty() {
		return ErrEmptyCart
	}
	s.Step = s.Step.Next()
	return nil
}

// Retreat moves one step back, clamped at Cart. Once the order is placed
// there is no way back.
func (s *Session) Retreat() error {
	if s.Step == StepConfirmation {
		return ErrCheckoutFinal
	}
	s.Step = s.Step.Prev()
	return nil
}
