package service

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"go.uber.org/zap"
)

const (
	// DefaultStuckThreshold applies when the caller does not supply one.
	DefaultStuckThreshold = 120 * time.Minute

	defaultStatsWindowDays = 7
)

// AuditStats aggregates the audit trail and live order state: transitions
// per day and status over a trailing window, dwell-time stats per transition
// pair, and orders stuck in their current status past the threshold. Plain
// reads, eventually consistent with in-flight transitions.
func (s *Service) AuditStats(ctx context.Context, actor domain.Actor, days int,
	stuckThreshold time.Duration) (*domain.AuditStats, error) {
	if !actor.CanReadStats() {
		return nil, domain.ErrForbidden
	}

	if days <= 0 {
		days = defaultStatsWindowDays
	}
	if stuckThreshold <= 0 {
		stuckThreshold = DefaultStuckThreshold
	}
	since := time.Now().AddDate(0, 0, -days)

	activity, err := s.repo.CountTransitionsByDay(ctx, since)
	if err != nil {
		s.logger.Error("Count transitions", zap.Error(err))
		return nil, domain.ErrInternal
	}

	dwell, err := s.repo.TransitionDwellStats(ctx, since)
	if err != nil {
		s.logger.Error("Dwell stats", zap.Error(err))
		return nil, domain.ErrInternal
	}

	stuck, err := s.repo.ListStuckOrders(ctx, stuckThreshold)
	if err != nil {
		s.logger.Error("Stuck orders", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if actor.Role == domain.RoleSeller {
		stuck = lo.Filter(stuck, func(o domain.StuckOrder, _ int) bool {
			return o.SellerID == actor.ID
		})
	}
	// most-stuck first
	sort.Slice(stuck, func(i, j int) bool {
		return stuck[i].StuckMinutes > stuck[j].StuckMinutes
	})

	return &domain.AuditStats{
		WindowDays:  days,
		Activity:    activity,
		Dwell:       dwell,
		StuckOrders: stuck,
	}, nil
}
