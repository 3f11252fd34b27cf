package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
)

func TestNewTicket(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("Creates NEW ticket with sequence ID", func(t *testing.T) {
		ticket, err := NewTicket(42, "user@example.com", TypeRegular, "meter rejected my token", now)
		require.NoError(t, err)

		assert.Equal(t, "PST-42", ticket.TicketID)
		assert.Equal(t, TicketNew, ticket.Status)
		assert.Equal(t, "user@example.com", ticket.Email)
		assert.Equal(t, "meter rejected my token", ticket.Details)
		assert.Empty(t, ticket.Comments)
		assert.Equal(t, now, ticket.CreatedAt)
	})

	t.Run("Rejects missing email or details", func(t *testing.T) {
		_, err := NewTicket(1, "", TypeRegular, "details", now)
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = NewTicket(1, "user@example.com", TypeRegular, "", now)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestIsValidTicketStatus(t *testing.T) {
	for _, valid := range []string{"NEW", "IN_PROGRESS", "DONE"} {
		assert.True(t, IsValidTicketStatus(valid), valid)
	}
	for _, invalid := range []string{"", "new", "CLOSED"} {
		assert.False(t, IsValidTicketStatus(invalid), invalid)
	}
}
