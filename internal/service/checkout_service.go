package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/NoroffFEU/online-shop/internal/platform/logger"
	"github.com/NoroffFEU/online-shop/internal/validation"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in
// the cart.
var ErrEmptyCart = errors.New("cart is empty")

// OrderConfirmation is handed back after a successful checkout.
type OrderConfirmation struct {
	Reference string
	TotalQty  int
	TotalCost float64
	PlacedAt  time.Time
}

// CheckoutService validates the checkout form and, on success, runs
// the simulated submission, clears the cart and issues a confirmation.
type CheckoutService interface {
	Form() *validation.Form
	Submit(ctx context.Context) (*OrderConfirmation, validation.Errors, error)
}

type checkoutService struct {
	cart        CartService
	form        *validation.Form
	submitDelay time.Duration
	log         logger.Logger
}

type CheckoutServiceConfig struct {
	SubmitDelay time.Duration
}

func NewCheckoutService(cart CartService, log logger.Logger, cfg CheckoutServiceConfig) CheckoutService {
	if log == nil {
		log = logger.NoOp()
	}
	return &checkoutService{
		cart:        cart,
		form:        validation.NewCheckoutForm(),
		submitDelay: cfg.SubmitDelay,
		log:         log,
	}
}

func (s *checkoutService) Form() *validation.Form {
	return s.form
}

// Submit re-validates and marks every field touched. Field errors
// abort the attempt with no state change. Otherwise the simulated
// submission delay runs (honoring ctx), the cart is cleared, the form
// reset and a confirmation returned.
func (s *checkoutService) Submit(ctx context.Context) (*OrderConfirmation, validation.Errors, error) {
	fieldErrors := s.form.Validate()
	s.form.TouchAll()
	if len(fieldErrors) > 0 {
		s.log.Infof("checkout blocked by %d field errors", len(fieldErrors))
		return nil, fieldErrors, nil
	}

	if s.cart.IsEmpty() {
		return nil, nil, ErrEmptyCart
	}

	if err := s.wait(ctx); err != nil {
		return nil, nil, err
	}

	confirmation := &OrderConfirmation{
		Reference: uuid.New().String(),
		TotalQty:  s.cart.TotalQty(),
		TotalCost: s.cart.TotalCost(),
		PlacedAt:  time.Now().UTC(),
	}

	s.cart.Clear()
	s.form.Reset()

	s.log.Infof("order %s placed: %d items, %.2f NOK", confirmation.Reference, confirmation.TotalQty, confirmation.TotalCost)
	return confirmation, nil, nil
}

func (s *checkoutService) wait(ctx context.Context) error {
	if s.submitDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.submitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
