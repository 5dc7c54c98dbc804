package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
	"github.com/tucano1306/CRM-sub005/internal/core/port/mock"
	"github.com/tucano1306/CRM-sub005/internal/core/service"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, mockCtrl *gomock.Controller) (*service.Service, *mock.MockRepository) {
	t.Helper()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	s, err := service.NewService(repo, ts, notifier, logger)
	require.NoError(t, err)

	return s, repo
}

func activeNote(clientID uint64) *domain.CreditNote {
	return &domain.CreditNote{
		ID:        uuid.New(),
		ReturnID:  uuid.New(),
		ClientID:  clientID,
		SellerID:  7,
		Amount:    decimal.MustParse("50.00"),
		Balance:   decimal.MustParse("50.00"),
		Active:    true,
		IssuedAt:  time.Now().Add(-24 * time.Hour),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

// redeemAgainst executes the service closure on the given note, the way the
// real repository does under the row lock.
func redeemAgainst(note *domain.CreditNote) func(context.Context, uuid.UUID, port.UpdateCreditNoteFn) (*domain.CreditNote, error) {
	return func(_ context.Context, _ uuid.UUID, fn port.UpdateCreditNoteFn) (*domain.CreditNote, error) {
		if err := fn(note); err != nil {
			return nil, err
		}
		return note, nil
	}
}

func TestService_RedeemCreditNote(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	client := domain.Actor{ID: 3, Role: domain.RoleClient}

	type redeemTest struct {
		name       string
		actor      domain.Actor
		note       *domain.CreditNote
		amount     decimal.Decimal
		expError   error
		expBalance decimal.Decimal
		expActive  bool
	}

	expiredNote := activeNote(3)
	expiredNote.ExpiresAt = time.Now().Add(-time.Hour)

	inactiveNote := activeNote(3)
	inactiveNote.Active = false

	tests := []redeemTest{
		{
			name:       "partial redemption",
			actor:      client,
			note:       activeNote(3),
			amount:     decimal.MustParse("20.00"),
			expBalance: decimal.MustParse("30.00"),
			expActive:  true,
		},
		{
			name:       "full redemption deactivates",
			actor:      client,
			note:       activeNote(3),
			amount:     decimal.MustParse("50.00"),
			expBalance: decimal.MustParse("0.00"),
			expActive:  false,
		},
		{
			name:     "balance never goes negative",
			actor:    client,
			note:     activeNote(3),
			amount:   decimal.MustParse("50.01"),
			expError: domain.ErrInsufficientCredit,
		},
		{
			name:     "expired note",
			actor:    client,
			note:     expiredNote,
			amount:   decimal.MustParse("10.00"),
			expError: domain.ErrCreditNoteExpired,
		},
		{
			name:     "inactive note",
			actor:    client,
			note:     inactiveNote,
			amount:   decimal.MustParse("10.00"),
			expError: domain.ErrCreditNoteInactive,
		},
		{
			name:     "foreign client forbidden",
			actor:    domain.Actor{ID: 99, Role: domain.RoleClient},
			note:     activeNote(3),
			amount:   decimal.MustParse("10.00"),
			expError: domain.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, repo := newTestService(t, mockCtrl)

			repo.EXPECT().UpdateCreditNoteBalance(gomock.Any(), test.note.ID, gomock.Any()).
				DoAndReturn(redeemAgainst(test.note))

			result, err := s.RedeemCreditNote(context.Background(), test.actor, test.note.ID, test.amount)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expBalance, result.Balance)
			assert.Equal(t, test.expActive, result.Active)
		})
	}

	t.Run("non-positive amount rejected before repo call", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl)

		_, err := s.RedeemCreditNote(context.Background(), client, uuid.New(), decimal.Zero)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})
}

func TestService_OpenReturn(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	client := domain.Actor{ID: 3, Role: domain.RoleClient}

	t.Run("delivered order is returnable", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).
			Return(&domain.Order{ID: 1, ClientID: 3, SellerID: 7, Status: domain.OrderStatusDelivered}, nil)
		repo.EXPECT().CreateReturn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rtn *domain.Return) (*domain.Return, error) {
				return rtn, nil
			})

		rtn, err := s.OpenReturn(context.Background(), client, 1, "wrong item")
		require.NoError(t, err)

		assert.Equal(t, domain.ReturnStatusRequested, rtn.Status)
		assert.Equal(t, uint64(1), rtn.OrderID)
		assert.Equal(t, uint64(7), rtn.SellerID)
		assert.Equal(t, "wrong item", rtn.Reason)
	})

	t.Run("pending order is not returnable", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).
			Return(&domain.Order{ID: 1, ClientID: 3, SellerID: 7, Status: domain.OrderStatusPending}, nil)

		_, err := s.OpenReturn(context.Background(), client, 1, "changed my mind")
		assert.ErrorIs(t, err, domain.ErrOrderNotReturnable)
	})

	t.Run("foreign client forbidden", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().ReadOrder(gomock.Any(), uint64(1)).
			Return(&domain.Order{ID: 1, ClientID: 4, SellerID: 7, Status: domain.OrderStatusDelivered}, nil)

		_, err := s.OpenReturn(context.Background(), client, 1, "not mine")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestService_ApproveReturn(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	approveAgainst := func(rtn *domain.Return, order *domain.Order) func(context.Context, uuid.UUID, port.ApproveReturnFn) (*domain.CreditNote, error) {
		return func(_ context.Context, _ uuid.UUID, fn port.ApproveReturnFn) (*domain.CreditNote, error) {
			return fn(rtn, order)
		}
	}

	rtn := &domain.Return{
		ID:       uuid.New(),
		OrderID:  1,
		ClientID: 3,
		SellerID: 7,
		Status:   domain.ReturnStatusRequested,
	}
	order := &domain.Order{ID: 1, ClientID: 3, SellerID: 7,
		Status: domain.OrderStatusCompleted, Total: decimal.MustParse("42.50")}

	t.Run("approval issues credit note for order total", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		pending := *rtn
		repo.EXPECT().ApproveReturn(gomock.Any(), rtn.ID, gomock.Any()).
			DoAndReturn(approveAgainst(&pending, order))

		note, err := s.ApproveReturn(context.Background(), seller, rtn.ID)
		require.NoError(t, err)

		assert.Equal(t, decimal.MustParse("42.50"), note.Amount)
		assert.Equal(t, decimal.MustParse("42.50"), note.Balance)
		assert.True(t, note.Active)
		assert.Equal(t, rtn.ID, note.ReturnID)
		assert.True(t, note.ExpiresAt.After(note.IssuedAt))

		assert.Equal(t, domain.ReturnStatusApproved, pending.Status)
		assert.NotNil(t, pending.ResolvedAt)
	})

	t.Run("already resolved return", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		resolved := *rtn
		resolved.Status = domain.ReturnStatusApproved
		repo.EXPECT().ApproveReturn(gomock.Any(), rtn.ID, gomock.Any()).
			DoAndReturn(approveAgainst(&resolved, order))

		_, err := s.ApproveReturn(context.Background(), seller, rtn.ID)
		assert.ErrorIs(t, err, domain.ErrReturnAlreadyClosed)
	})

	t.Run("foreign seller forbidden", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		pending := *rtn
		repo.EXPECT().ApproveReturn(gomock.Any(), rtn.ID, gomock.Any()).
			DoAndReturn(approveAgainst(&pending, order))

		_, err := s.ApproveReturn(context.Background(), domain.Actor{ID: 99, Role: domain.RoleSeller}, rtn.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
