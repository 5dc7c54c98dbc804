package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
)

// TransitionFn receives the order locked for update and returns the plan to
// apply, or a domain error to abort the transaction.
type TransitionFn func(order *domain.Order) (*domain.TransitionPlan, error)

// ApproveReturnFn receives the return and its order, both locked, and
// returns the credit note to issue.
type ApproveReturnFn func(ret *domain.Return, order *domain.Order) (*domain.CreditNote, error)

// UpdateCreditNoteFn mutates the note in place inside the transaction.
type UpdateCreditNoteFn func(note *domain.CreditNote) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID uint64) ([]*domain.Order, error)
	ListOrdersByClient(ctx context.Context, clientID uint64) ([]*domain.Order, error)

	// ApplyTransition runs fn against the order row locked FOR UPDATE and
	// applies the returned plan atomically: stock decrements, status and
	// timestamp update, history insert, idempotency-key insert. When
	// idemKey is non-empty and already recorded, it returns the current
	// order with replayed=true and applies nothing.
	ApplyTransition(ctx context.Context, orderID uint64, idemKey string,
		fn TransitionFn) (order *domain.Order, replayed bool, err error)

	ListOrderHistory(ctx context.Context, orderID uint64) ([]*domain.StatusChange, error)

	// Product
	ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error)

	// Returns / credit notes
	CreateReturn(ctx context.Context, rtn *domain.Return) (*domain.Return, error)
	ReadReturn(ctx context.Context, returnID uuid.UUID) (*domain.Return, error)
	ApproveReturn(ctx context.Context, returnID uuid.UUID, fn ApproveReturnFn) (*domain.CreditNote, error)
	ListCreditNotesByClient(ctx context.Context, clientID uint64) ([]*domain.CreditNote, error)
	UpdateCreditNoteBalance(ctx context.Context, noteID uuid.UUID, fn UpdateCreditNoteFn) (*domain.CreditNote, error)

	// Reporting
	CountTransitionsByDay(ctx context.Context, since time.Time) ([]domain.ActivityBucket, error)
	TransitionDwellStats(ctx context.Context, since time.Time) ([]domain.DwellStats, error)
	ListStuckOrders(ctx context.Context, threshold time.Duration) ([]domain.StuckOrder, error)
}
