package ticket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	mcore "github.com/powerstack-ng/powerstack-api/mocks/port/core"
	mpers "github.com/powerstack-ng/powerstack-api/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func newUseCase(t *testing.T) (*UseCase, *mpers.MockTicketRepository) {
	ticketRepo := mpers.NewMockTicketRepository(t)

	timeProvider := mcore.NewMockTimeProvider(t)
	timeProvider.On("Now").Return(fixedTime).Maybe()

	logger := mcore.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return NewUseCase(ticketRepo, timeProvider, logger), ticketRepo
}

var (
	userClaims  = entity.AuthClaims{Email: "user@example.com", UserType: entity.TypeRegular}
	adminClaims = entity.AuthClaims{Email: "admin@example.com", UserType: entity.TypeAdmin}
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Ticket ID follows the stored count", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("Count", mock.Anything).Return(int64(7), nil).Once()

		var created *entity.Ticket
		repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Ticket")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Ticket) }).
			Return(nil).Once()

		id, err := uc.Submit(ctx, userClaims, "meter rejected my token")
		require.NoError(t, err)

		assert.Equal(t, "PST-8", id)
		require.NotNil(t, created)
		assert.Equal(t, entity.TicketNew, created.Status)
		assert.Equal(t, "user@example.com", created.Email)
		assert.Equal(t, fixedTime, created.CreatedAt)
	})

	t.Run("Empty details are rejected", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("Count", mock.Anything).Return(int64(0), nil).Once()

		_, err := uc.Submit(ctx, userClaims, "")
		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin can list", func(t *testing.T) {
		uc, repo := newUseCase(t)
		stored := []*entity.Ticket{{TicketID: "PST-2"}, {TicketID: "PST-1"}}
		repo.On("List", mock.Anything).Return(stored, nil).Once()

		tickets, err := uc.List(ctx, adminClaims)
		require.NoError(t, err)
		assert.Equal(t, stored, tickets)
	})

	t.Run("Regular user cannot", func(t *testing.T) {
		uc, repo := newUseCase(t)
		_, err := uc.List(ctx, userClaims)
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid transition", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("UpdateStatus", mock.Anything, "PST-1", entity.TicketInProgress).Return(nil).Once()

		assert.NoError(t, uc.UpdateStatus(ctx, adminClaims, "PST-1", "IN_PROGRESS"))
	})

	t.Run("Unknown status", func(t *testing.T) {
		uc, _ := newUseCase(t)
		err := uc.UpdateStatus(ctx, adminClaims, "PST-1", "CLOSED")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Regular user cannot", func(t *testing.T) {
		uc, _ := newUseCase(t)
		err := uc.UpdateStatus(ctx, userClaims, "PST-1", "DONE")
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Comment carries the admin's identity and timestamp", func(t *testing.T) {
		uc, repo := newUseCase(t)
		repo.On("AppendComment", mock.Anything, "PST-1", entity.TicketComment{
			Author:  "admin@example.com",
			Comment: "token reissued",
			At:      fixedTime,
		}).Return(nil).Once()

		assert.NoError(t, uc.AddComment(ctx, adminClaims, "PST-1", "token reissued"))
	})

	t.Run("Empty comment", func(t *testing.T) {
		uc, _ := newUseCase(t)
		err := uc.AddComment(ctx, adminClaims, "PST-1", "")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Regular user cannot", func(t *testing.T) {
		uc, _ := newUseCase(t)
		err := uc.AddComment(ctx, userClaims, "PST-1", "hello")
		assert.ErrorIs(t, err, errs.ErrUnauthorizedUser)
	})
}
