package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
)

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	CreateOrder(ctx context.Context, actor domain.Actor, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor) ([]*domain.Order, error)
	TransitionOrder(ctx context.Context, actor domain.Actor, req domain.TransitionRequest) (*domain.Order, error)
	OrderHistory(ctx context.Context, actor domain.Actor, orderID uint64) ([]*domain.StatusChange, error)

	OpenReturn(ctx context.Context, actor domain.Actor, orderID uint64, reason string) (*domain.Return, error)
	ApproveReturn(ctx context.Context, actor domain.Actor, returnID uuid.UUID) (*domain.CreditNote, error)
	ListCreditNotes(ctx context.Context, actor domain.Actor) ([]*domain.CreditNote, error)
	RedeemCreditNote(ctx context.Context, actor domain.Actor, noteID uuid.UUID, amount decimal.Decimal) (*domain.CreditNote, error)

	AuditStats(ctx context.Context, actor domain.Actor, days int, stuckThreshold time.Duration) (*domain.AuditStats, error)
}
