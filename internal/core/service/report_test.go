package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/service"
)

func TestService_AuditStats(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	admin := domain.Actor{ID: 1, Role: domain.RoleAdmin}

	stuckFixture := []domain.StuckOrder{
		{OrderID: 1, SellerID: 7, Status: domain.OrderStatusReviewing, StuckMinutes: 130},
		{OrderID: 2, SellerID: 8, Status: domain.OrderStatusPreparing, StuckMinutes: 500},
		{OrderID: 3, SellerID: 7, Status: domain.OrderStatusConfirmed, StuckMinutes: 240},
	}

	t.Run("client forbidden", func(t *testing.T) {
		s, _ := newTestService(t, mockCtrl)

		_, err := s.AuditStats(context.Background(), domain.Actor{ID: 3, Role: domain.RoleClient}, 7, time.Hour)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("zero args fall back to defaults", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().CountTransitionsByDay(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) ([]domain.ActivityBucket, error) {
				assert.WithinDuration(t, time.Now().AddDate(0, 0, -7), since, time.Minute)
				return nil, nil
			})
		repo.EXPECT().TransitionDwellStats(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().ListStuckOrders(gomock.Any(), service.DefaultStuckThreshold).Return(nil, nil)

		stats, err := s.AuditStats(context.Background(), admin, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 7, stats.WindowDays)
	})

	t.Run("admin sees every stuck order, most stuck first", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().CountTransitionsByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().TransitionDwellStats(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().ListStuckOrders(gomock.Any(), 3*time.Hour).Return(stuckFixture, nil)

		stats, err := s.AuditStats(context.Background(), admin, 30, 3*time.Hour)
		require.NoError(t, err)

		require.Len(t, stats.StuckOrders, 3)
		assert.Equal(t, uint64(2), stats.StuckOrders[0].OrderID)
		assert.Equal(t, uint64(3), stats.StuckOrders[1].OrderID)
		assert.Equal(t, uint64(1), stats.StuckOrders[2].OrderID)
	})

	t.Run("seller sees only their stuck orders", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().CountTransitionsByDay(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().TransitionDwellStats(gomock.Any(), gomock.Any()).Return(nil, nil)
		repo.EXPECT().ListStuckOrders(gomock.Any(), gomock.Any()).Return(stuckFixture, nil)

		stats, err := s.AuditStats(context.Background(), seller, 7, time.Hour)
		require.NoError(t, err)

		require.Len(t, stats.StuckOrders, 2)
		for _, o := range stats.StuckOrders {
			assert.Equal(t, seller.ID, o.SellerID)
		}
		assert.Equal(t, uint64(3), stats.StuckOrders[0].OrderID)
	})

	t.Run("repository failure surfaces as internal", func(t *testing.T) {
		s, repo := newTestService(t, mockCtrl)

		repo.EXPECT().CountTransitionsByDay(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		_, err := s.AuditStats(context.Background(), admin, 7, time.Hour)
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}
