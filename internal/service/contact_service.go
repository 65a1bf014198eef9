package service

import (
	"context"
	"time"

	"github.com/NoroffFEU/online-shop/internal/platform/logger"
	"github.com/NoroffFEU/online-shop/internal/validation"
)

// ContactService handles the contact form: validate, simulate the
// async submission, reset on success.
type ContactService interface {
	Form() *validation.Form
	Submit(ctx context.Context) (validation.Errors, error)
}

type contactService struct {
	form        *validation.Form
	submitDelay time.Duration
	log         logger.Logger
}

type ContactServiceConfig struct {
	SubmitDelay time.Duration
}

func NewContactService(log logger.Logger, cfg ContactServiceConfig) ContactService {
	if log == nil {
		log = logger.NoOp()
	}
	return &contactService{
		form:        validation.NewContactForm(),
		submitDelay: cfg.SubmitDelay,
		log:         log,
	}
}

func (s *contactService) Form() *validation.Form {
	return s.form
}

// Submit re-validates and touches all fields; field errors abort with
// no state change, success resets the form after the simulated delay.
func (s *contactService) Submit(ctx context.Context) (validation.Errors, error) {
	fieldErrors := s.form.Validate()
	s.form.TouchAll()
	if len(fieldErrors) > 0 {
		s.log.Infof("contact submit blocked by %d field errors", len(fieldErrors))
		return fieldErrors, nil
	}

	if s.submitDelay > 0 {
		timer := time.NewTimer(s.submitDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	s.form.Reset()
	s.log.Info("contact message sent")
	return nil, nil
}
