package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"go.uber.org/zap"
)

func (s *Service) CreateOrder(ctx context.Context, actor domain.Actor, order *domain.Order) (*domain.Order, error) {
	if actor.Role == domain.RoleClient && actor.ID != order.ClientID {
		return nil, domain.ErrForbidden
	}
	if len(order.Items) == 0 {
		return nil, domain.ErrBadRequest
	}

	total := decimal.Zero
	for i, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrBadRequest
		}
		product, err := s.repo.ReadProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		order.Items[i].UnitPrice = product.Price
		order.Items[i].ProductName = product.Name

		sub, err := order.Items[i].Subtotal()
		if err != nil {
			s.logger.Error("Subtotal", zap.Error(err))
			return nil, domain.ErrInternal
		}
		total, err = total.Add(sub)
		if err != nil {
			s.logger.Error("Total", zap.Error(err))
			return nil, domain.ErrInternal
		}
	}

	// total is fixed at creation time, later item edits do not recompute it
	order.Total = total
	order.Status = domain.OrderStatusPending
	order.CreatedAt = time.Now()

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.CanReadOrder(order) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error) {
	switch actor.Role {
	case domain.RoleSeller, domain.RoleAdmin:
		return s.repo.ListOrdersBySeller(ctx, actor.ID)
	default:
		return s.repo.ListOrdersByClient(ctx, actor.ID)
	}
}

// TransitionOrder moves an order along the lifecycle graph. Validation,
// authorization and plan building run inside the repository transaction
// against the row locked for update, so a concurrent request observes the
// committed status of the winner.
func (s *Service) TransitionOrder(ctx context.Context, actor domain.Actor, req domain.TransitionRequest) (*domain.Order, error) {
	if _, err := domain.ToOrderStatus(string(req.Target)); err != nil {
		return nil, err
	}

	var event domain.OrderEvent

	order, replayed, err := s.repo.ApplyTransition(ctx, req.OrderID, req.IdempotencyKey,
		func(o *domain.Order) (*domain.TransitionPlan, error) {
			if !actor.CanManageOrder(o) {
				return nil, domain.ErrForbidden
			}
			if err := domain.CanTransition(o.Status, req.Target); err != nil {
				return nil, err
			}

			now := time.Now()
			plan := domain.TransitionPlan{
				Target:  req.Target,
				StampAt: now,
				Change: domain.StatusChange{
					ID:         uuid.New(),
					OrderID:    o.ID,
					PrevStatus: o.Status,
					NewStatus:  req.Target,
					ActorID:    actor.ID,
					ActorRole:  actor.Role,
					Note:       req.Note,
					CreatedAt:  now,
				},
			}

			if req.Target.Fulfillment() {
				plan.Decrements = make([]domain.StockDecrement, 0, len(o.Items))
				for _, item := range o.Items {
					plan.Decrements = append(plan.Decrements, domain.StockDecrement{
						ProductID: item.ProductID,
						Quantity:  item.Quantity,
					})
				}
			}

			event = domain.OrderEvent{
				OrderID:    o.ID,
				ClientID:   o.ClientID,
				SellerID:   o.SellerID,
				PrevStatus: o.Status,
				NewStatus:  req.Target,
				At:         now,
			}

			return &plan, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrInternal) {
			s.logger.Error("Apply transition",
				zap.Uint64("order", req.OrderID),
				zap.String("target", string(req.Target)),
				zap.Error(err))
		}
		return nil, err
	}

	if !replayed {
		s.notifier.ScheduleNotification(event)
	}

	return order, nil
}

func (s *Service) OrderHistory(ctx context.Context, actor domain.Actor, orderID uint64) ([]*domain.StatusChange, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !actor.CanReadOrder(order) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListOrderHistory(ctx, orderID)
}
