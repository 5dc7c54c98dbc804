package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
	"github.com/tucano1306/CRM-sub005/internal/core/port/mock"
	"github.com/tucano1306/CRM-sub005/internal/core/service"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, notifier *mock.MockNotifier)

var seller = domain.Actor{ID: 7, Role: domain.RoleSeller}

func deliveredOrder() *domain.Order {
	return &domain.Order{
		ID:       1,
		ClientID: 3,
		SellerID: 7,
		Status:   domain.OrderStatusDelivered,
		Total:    decimal.MustParse("42.50"),
		Items: []domain.OrderItem{
			{ProductID: 11, Quantity: 5, UnitPrice: decimal.MustParse("5.50")},
			{ProductID: 12, Quantity: 3, UnitPrice: decimal.MustParse("5.00")},
		},
	}
}

// applyAgainst makes the mock repository execute the service's transition
// closure against the given order, the way the real repository does inside
// its transaction.
func applyAgainst(order *domain.Order) func(context.Context, uint64, string, port.TransitionFn) (*domain.Order, bool, error) {
	return func(_ context.Context, _ uint64, _ string, fn port.TransitionFn) (*domain.Order, bool, error) {
		plan, err := fn(order)
		if err != nil {
			return nil, false, err
		}
		order.StampStatus(plan.Target, plan.StampAt)
		return order, false, nil
	}
}

func TestService_TransitionOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type transitionTest struct {
		name      string
		actor     domain.Actor
		req       domain.TransitionRequest
		mock      prepareMocks
		expError  error
		expStatus domain.OrderStatus
	}

	tests := []transitionTest{
		{
			name:  "transition good",
			actor: seller,
			req:   domain.TransitionRequest{OrderID: 1, Target: domain.OrderStatusCompleted, Note: "handed over"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "", gomock.Any()).
					DoAndReturn(applyAgainst(deliveredOrder()))
				notifier.EXPECT().ScheduleNotification(gomock.Any())
			},
			expError:  nil,
			expStatus: domain.OrderStatusCompleted,
		},
		{
			name:  "illegal shortcut",
			actor: seller,
			req:   domain.TransitionRequest{OrderID: 1, Target: domain.OrderStatusCompleted},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				pending := deliveredOrder()
				pending.Status = domain.OrderStatusPending
				repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "", gomock.Any()).
					DoAndReturn(applyAgainst(pending))
			},
			expError: domain.ErrIllegalTransition,
		},
		{
			name:  "foreign seller forbidden",
			actor: domain.Actor{ID: 99, Role: domain.RoleSeller},
			req:   domain.TransitionRequest{OrderID: 1, Target: domain.OrderStatusCompleted},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "", gomock.Any()).
					DoAndReturn(applyAgainst(deliveredOrder()))
			},
			expError: domain.ErrForbidden,
		},
		{
			name:  "client cannot transition",
			actor: domain.Actor{ID: 3, Role: domain.RoleClient},
			req:   domain.TransitionRequest{OrderID: 1, Target: domain.OrderStatusCompleted},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "", gomock.Any()).
					DoAndReturn(applyAgainst(deliveredOrder()))
			},
			expError: domain.ErrForbidden,
		},
		{
			name:  "replayed key skips notification",
			actor: seller,
			req:   domain.TransitionRequest{OrderID: 1, Target: domain.OrderStatusCompleted, IdempotencyKey: "retry-1"},
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				completed := deliveredOrder()
				completed.Status = domain.OrderStatusCompleted
				repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "retry-1", gomock.Any()).
					Return(completed, true, nil)
			},
			expError:  nil,
			expStatus: domain.OrderStatusCompleted,
		},
		{
			name:     "unknown target status",
			actor:    seller,
			req:      domain.TransitionRequest{OrderID: 1, Target: "SHIPPED"},
			mock:     func(repo *mock.MockRepository, notifier *mock.MockNotifier) {},
			expError: domain.ErrUnknownStatus,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			test.mock(repo, notifier)

			s, err := service.NewService(repo, ts, notifier, logger)
			require.NoError(t, err)

			result, err := s.TransitionOrder(context.Background(), test.actor, test.req)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expStatus, result.Status)
		})
	}
}

func TestService_TransitionOrder_PlanContents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	order := deliveredOrder()

	var plan *domain.TransitionPlan
	repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, _ string, fn port.TransitionFn) (*domain.Order, bool, error) {
			var err error
			plan, err = fn(order)
			if err != nil {
				return nil, false, err
			}
			order.StampStatus(plan.Target, plan.StampAt)
			return order, false, nil
		})
	notifier.EXPECT().ScheduleNotification(gomock.Any()).
		Do(func(event domain.OrderEvent) {
			assert.Equal(t, domain.OrderStatusDelivered, event.PrevStatus)
			assert.Equal(t, domain.OrderStatusCompleted, event.NewStatus)
			assert.Equal(t, uint64(3), event.ClientID)
		})

	s, err := service.NewService(repo, ts, notifier, logger)
	require.NoError(t, err)

	_, err = s.TransitionOrder(context.Background(), seller, domain.TransitionRequest{
		OrderID: 1,
		Target:  domain.OrderStatusCompleted,
		Note:    "done",
	})
	require.NoError(t, err)

	require.NotNil(t, plan)

	// exactly one audit record per transition, previous status captured
	assert.Equal(t, domain.OrderStatusDelivered, plan.Change.PrevStatus)
	assert.Equal(t, domain.OrderStatusCompleted, plan.Change.NewStatus)
	assert.Equal(t, seller.ID, plan.Change.ActorID)
	assert.Equal(t, seller.Role, plan.Change.ActorRole)
	assert.Equal(t, "done", plan.Change.Note)
	assert.NotEqual(t, "", plan.Change.ID.String())

	// fulfillment decrements every line item by its ordered quantity
	assert.Equal(t, []domain.StockDecrement{
		{ProductID: 11, Quantity: 5},
		{ProductID: 12, Quantity: 3},
	}, plan.Decrements)
}

func TestService_TransitionOrder_NonFulfillmentHasNoDecrements(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	order := deliveredOrder()
	order.Status = domain.OrderStatusPending

	var plan *domain.TransitionPlan
	repo.EXPECT().ApplyTransition(gomock.Any(), uint64(1), "", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, _ string, fn port.TransitionFn) (*domain.Order, bool, error) {
			var err error
			plan, err = fn(order)
			if err != nil {
				return nil, false, err
			}
			order.StampStatus(plan.Target, plan.StampAt)
			return order, false, nil
		})
	notifier.EXPECT().ScheduleNotification(gomock.Any())

	s, err := service.NewService(repo, ts, notifier, logger)
	require.NoError(t, err)

	result, err := s.TransitionOrder(context.Background(), seller, domain.TransitionRequest{
		OrderID: 1,
		Target:  domain.OrderStatusReviewing,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusReviewing, result.Status)
	assert.NotNil(t, result.ReviewStartedAt)
	assert.Empty(t, plan.Decrements)
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	client := domain.Actor{ID: 3, Role: domain.RoleClient}

	t.Run("totals computed from products", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		notifier := mock.NewMockNotifier(mockCtrl)

		repo.EXPECT().ReadProduct(gomock.Any(), uint64(11)).
			Return(&domain.Product{ID: 11, Name: "flour", Price: decimal.MustParse("2.50")}, nil)
		repo.EXPECT().ReadProduct(gomock.Any(), uint64(12)).
			Return(&domain.Product{ID: 12, Name: "sugar", Price: decimal.MustParse("3.00")}, nil)
		repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				order.ID = 42
				return order, nil
			})

		s, err := service.NewService(repo, ts, notifier, logger)
		require.NoError(t, err)

		order, err := s.CreateOrder(context.Background(), client, &domain.Order{
			ClientID: 3,
			SellerID: 7,
			Items: []domain.OrderItem{
				{ProductID: 11, Quantity: 2},
				{ProductID: 12, Quantity: 1},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, uint64(42), order.ID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
		assert.Equal(t, decimal.MustParse("8.00"), order.Total)
		assert.Equal(t, "flour", order.Items[0].ProductName)
	})

	t.Run("empty order rejected", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		notifier := mock.NewMockNotifier(mockCtrl)

		s, err := service.NewService(repo, ts, notifier, logger)
		require.NoError(t, err)

		_, err = s.CreateOrder(context.Background(), client, &domain.Order{ClientID: 3, SellerID: 7})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("client cannot order for someone else", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		notifier := mock.NewMockNotifier(mockCtrl)

		s, err := service.NewService(repo, ts, notifier, logger)
		require.NoError(t, err)

		_, err = s.CreateOrder(context.Background(), client, &domain.Order{
			ClientID: 4,
			SellerID: 7,
			Items:    []domain.OrderItem{{ProductID: 11, Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
