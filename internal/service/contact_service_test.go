package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoroffFEU/online-shop/internal/validation"
)

func TestContactService_Submit_BlockedKeepsValues(t *testing.T) {
	svc := NewContactService(nil, ContactServiceConfig{})
	svc.Form().Set(validation.FieldFullName, "Jane Doe")
	svc.Form().Set(validation.FieldEmail, "not-an-email")

	fieldErrors, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, validation.FieldEmail)
	assert.Contains(t, fieldErrors, validation.FieldSubject)

	// Blocked submits keep what the visitor typed.
	assert.Equal(t, "Jane Doe", svc.Form().Values()[validation.FieldFullName])
}

func TestContactService_Submit_SuccessResetsForm(t *testing.T) {
	svc := NewContactService(nil, ContactServiceConfig{SubmitDelay: 5 * time.Millisecond})
	svc.Form().Set(validation.FieldFullName, "Jane Doe")
	svc.Form().Set(validation.FieldSubject, "Hello there")
	svc.Form().Set(validation.FieldEmail, "jane@example.com")
	svc.Form().Set(validation.FieldMessage, "I would like to know more about the lamp.")

	fieldErrors, err := svc.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)
	assert.Empty(t, svc.Form().Values()[validation.FieldMessage])
}
