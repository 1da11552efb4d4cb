package services

import (
	"context"
	"errors"
	"testing"

	"techevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_SendRegistrationConfirmation(t *testing.T) {
	ctx := context.Background()
	data := &domain.RegistrationEmailData{Email: "alice@example.com", EventTitle: "Demo Hack"}

	t.Run("renders and sends", func(t *testing.T) {
		mailer, renderer := &fakeMailer{}, &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, testLogger)

		require.NoError(t, svc.SendRegistrationConfirmation(ctx, data))
		assert.Equal(t, "registration_confirmation", renderer.lastName)
		assert.Equal(t, "alice@example.com", mailer.to)
		assert.Equal(t, "subject", mailer.subject)
		assert.Equal(t, "text", mailer.text)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, testLogger)
		assert.Error(t, svc.SendRegistrationConfirmation(ctx, nil))
	})

	t.Run("render error", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("bad template")}, testLogger)
		assert.ErrorContains(t, svc.SendRegistrationConfirmation(ctx, data), "failed to render")
		assert.Empty(t, mailer.to)
	})

	t.Run("send error", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("ses down")}, &fakeRenderer{}, testLogger)
		assert.ErrorContains(t, svc.SendRegistrationConfirmation(ctx, data), "failed to send")
	})
}
