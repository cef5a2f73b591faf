package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepClamping(t *testing.T) {
	assert.Equal(t, StepDelivery, StepCart.Next())
	assert.Equal(t, StepConfirmation, StepPayment.Next())
	assert.Equal(t, StepConfirmation, StepConfirmation.Next())
	assert.Equal(t, StepCart, StepCart.Prev())
	assert.Equal(t, StepPayment, StepConfirmation.Prev())
}

func TestStepNames(t *testing.T) {
	assert.Equal(t, "Cart", StepCart.String())
	assert.Equal(t, "Confirmation", StepConfirmation.String())
	b, err := StepDelivery.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Delivery", string(b))
}

func TestAdvanceWalksTheFlow(t *testing.T) {
	s := &Session{Cart: New(fixtureItems())}

	for i, want := range []Step{StepDelivery, StepPayment, StepConfirmation} {
		require.NoError(t, s.Advance(), "advance %d", i)
		assert.Equal(t, want, s.Step)
	}

	// advancing past the terminal step is an idempotent no-op
	require.NoError(t, s.Advance())
	assert.Equal(t, StepConfirmation, s.Step)
	require.NoError(t, s.Advance())
	assert.Equal(t, StepConfirmation, s.Step)
}

func TestAdvanceRejectedOnEmptyCart(t *testing.T) {
	s := &Session{Cart: New(nil)}
	assert.ErrorIs(t, s.Advance(), ErrEmptyCart)
	assert.Equal(t, StepCart, s.Step)
}

func TestRetreat(t *testing.T) {
	s := &Session{Cart: New(fixtureItems()), Step: StepPayment}
	require.NoError(t, s.Retreat())
	assert.Equal(t, StepDelivery, s.Step)
	require.NoError(t, s.Retreat())
	assert.Equal(t, StepCart, s.Step)
	require.NoError(t, s.Retreat())
	assert.Equal(t, StepCart, s.Step, "clamped at the first step")
}

func TestRetreatRejectedAfterConfirmation(t *testing.T) {
	s := &Session{Cart: New(fixtureItems()), Step: StepConfirmation}
	assert.ErrorIs(t, s.Retreat(), ErrCheckoutFinal)
	assert.Equal(t, StepConfirmation, s.Step)
}

func TestStoreCreateSeedsSession(t *testing.T) {
	st := NewStore(fixtureItems())
	s := st.Create()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StepCart, s.Step)
	assert.Equal(t, OptionDelivery, s.Cart.DeliveryOption)
	assert.Equal(t, 125, s.Cart.Subtotal())

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
}

func TestStoreGetUnknown(t *testing.T) {
	st := NewStore(nil)
	_, err := st.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreUpdateAppliesMutation(t *testing.T) {
	st := NewStore(fixtureItems())
	s := st.Create()

	got, err := st.Update(s.ID, func(s *Session) error {
		s.Cart.ChangeQuantity("organic-milk", 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 170, got.Cart.Subtotal())

	reread, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 170, reread.Cart.Subtotal())
}

func TestStoreUpdateErrorLeavesStateUnchanged(t *testing.T) {
	st := NewStore(nil)
	s := st.Create()

	_, err := st.Update(s.ID, func(s *Session) error {
		s.Step = StepPayment
		return s.Advance() // fine
	})
	require.NoError(t, err)

	_, err = st.Update(s.ID, func(s *Session) error {
		s.Cart.SetDeliveryOption(OptionPickup)
		return ErrEmptyCart
	})
	assert.ErrorIs(t, err, ErrEmptyCart)

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, OptionDelivery, got.Cart.DeliveryOption, "failed update must not leak partial state")
	assert.Equal(t, StepConfirmation, got.Step)
}

func TestStoreSnapshotsAreIsolated(t *testing.T) {
	st := NewStore(fixtureItems())
	s := st.Create()

	s.Cart.Items[0].Quantity = 99
	s.Favorites["bigbasket"] = true

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Cart.Items[0].Quantity)
	assert.Empty(t, got.Favorites)
}
