package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"go.uber.org/zap"
)

// creditNoteTTL is how long an issued note stays redeemable.
const creditNoteTTL = 90 * 24 * time.Hour

var returnableStatuses = map[domain.OrderStatus]struct{}{
	domain.OrderStatusDelivered: {},
	domain.OrderStatusCompleted: {},
}

func (s *Service) OpenReturn(ctx context.Context, actor domain.Actor, orderID uint64, reason string) (*domain.Return, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != order.ClientID {
		return nil, domain.ErrForbidden
	}
	if _, ok := returnableStatuses[order.Status]; !ok {
		return nil, domain.ErrOrderNotReturnable
	}

	rtn := &domain.Return{
		ID:        uuid.New(),
		OrderID:   order.ID,
		ClientID:  order.ClientID,
		SellerID:  order.SellerID,
		Reason:    reason,
		Status:    domain.ReturnStatusRequested,
		CreatedAt: time.Now(),
	}

	newReturn, err := s.repo.CreateReturn(ctx, rtn)
	if err != nil {
		s.logger.Error("Create return", zap.Error(err))
		return nil, err
	}
	return newReturn, nil
}

// ApproveReturn resolves the return and issues a credit note for the order
// total, both inside one transaction.
func (s *Service) ApproveReturn(ctx context.Context, actor domain.Actor, returnID uuid.UUID) (*domain.CreditNote, error) {
	note, err := s.repo.ApproveReturn(ctx, returnID,
		func(rtn *domain.Return, order *domain.Order) (*domain.CreditNote, error) {
			if !actor.CanManageOrder(order) {
				return nil, domain.ErrForbidden
			}
			if rtn.Status != domain.ReturnStatusRequested {
				return nil, domain.ErrReturnAlreadyClosed
			}

			now := time.Now()
			rtn.Status = domain.ReturnStatusApproved
			rtn.ResolvedAt = &now

			return &domain.CreditNote{
				ID:        uuid.New(),
				ReturnID:  rtn.ID,
				ClientID:  rtn.ClientID,
				SellerID:  rtn.SellerID,
				Amount:    order.Total,
				Balance:   order.Total,
				Active:    true,
				IssuedAt:  now,
				ExpiresAt: now.Add(creditNoteTTL),
			}, nil
		})
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *Service) ListCreditNotes(ctx context.Context, actor domain.Actor) ([]*domain.CreditNote, error) {
	return s.repo.ListCreditNotesByClient(ctx, actor.ID)
}

// RedeemCreditNote consumes part of the note balance. The balance never goes
// below zero, a fully consumed note is deactivated.
func (s *Service) RedeemCreditNote(ctx context.Context, actor domain.Actor, noteID uuid.UUID,
	amount decimal.Decimal) (*domain.CreditNote, error) {
	if amount.Sign() <= 0 {
		return nil, domain.ErrBadRequest
	}

	note, err := s.repo.UpdateCreditNoteBalance(ctx, noteID, func(n *domain.CreditNote) error {
		if actor.Role != domain.RoleAdmin && actor.ID != n.ClientID {
			return domain.ErrForbidden
		}
		if err := n.Redeemable(time.Now()); err != nil {
			return err
		}
		if n.Balance.Cmp(amount) < 0 {
			return domain.ErrInsufficientCredit
		}

		newBalance, err := n.Balance.Sub(amount)
		if err != nil {
			return err
		}
		n.Balance = newBalance
		if n.Balance.IsZero() {
			n.Active = false
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return note, nil
}
