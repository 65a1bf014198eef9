package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoroffFEU/online-shop/internal/domain/entity"
	"github.com/NoroffFEU/online-shop/internal/validation"
)

func fillCheckoutForm(form *validation.Form) {
	form.Set(validation.FieldFullName, "Jane Doe")
	form.Set(validation.FieldEmail, "jane@example.com")
	form.Set(validation.FieldPhone, "12345678")
	form.Set(validation.FieldAddress, "Storgata 1, Oslo")
}

func TestCheckoutService_Submit_BlockedByFieldErrors(t *testing.T) {
	cart := NewCartService(nil)
	cart.AddItem(entity.CartItem{ProductID: "p1", UnitPrice: 100, Quantity: 2})

	svc := NewCheckoutService(cart, nil, CheckoutServiceConfig{})

	confirmation, fieldErrors, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, confirmation)
	assert.NotEmpty(t, fieldErrors)

	// A blocked submit mutates nothing and every error is now visible.
	assert.Equal(t, 2, cart.TotalQty())
	_, visible := svc.Form().VisibleError(validation.FieldEmail)
	assert.True(t, visible)
}

func TestCheckoutService_Submit_EmptyCart(t *testing.T) {
	cart := NewCartService(nil)
	svc := NewCheckoutService(cart, nil, CheckoutServiceConfig{})
	fillCheckoutForm(svc.Form())

	_, fieldErrors, err := svc.Submit(context.Background())
	assert.Empty(t, fieldErrors)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutService_Submit_Success(t *testing.T) {
	cart := NewCartService(nil)
	cart.AddItem(entity.CartItem{ProductID: "p1", Title: "Desk Lamp", UnitPrice: 150, Quantity: 2})

	svc := NewCheckoutService(cart, nil, CheckoutServiceConfig{SubmitDelay: 5 * time.Millisecond})
	fillCheckoutForm(svc.Form())

	confirmation, fieldErrors, err := svc.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, fieldErrors)
	require.NotNil(t, confirmation)

	assert.NotEmpty(t, confirmation.Reference)
	assert.Equal(t, 2, confirmation.TotalQty)
	assert.Equal(t, 300.0, confirmation.TotalCost)
	assert.False(t, confirmation.PlacedAt.IsZero())

	// Success clears the cart and resets the form.
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, svc.Form().Values()[validation.FieldFullName])
}

func TestCheckoutService_Submit_ContextCancelledDuringDelay(t *testing.T) {
	cart := NewCartService(nil)
	cart.AddItem(entity.CartItem{ProductID: "p1", UnitPrice: 100, Quantity: 1})

	svc := NewCheckoutService(cart, nil, CheckoutServiceConfig{SubmitDelay: time.Second})
	fillCheckoutForm(svc.Form())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := svc.Submit(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// An interrupted submission leaves the cart untouched.
	assert.Equal(t, 1, cart.TotalQty())
}
