package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange is one immutable audit record: written exactly once per
// successful transition, in the same transaction, never updated or deleted.
type StatusChange struct {
	ID         uuid.UUID
	OrderID    uint64
	PrevStatus OrderStatus
	NewStatus  OrderStatus
	ActorID    uint64
	ActorRole  Role
	Note       string
	CreatedAt  time.Time
}

// TransitionRequest is the caller's intent to move an order along the
// lifecycle graph.
type TransitionRequest struct {
	OrderID        uint64
	Target         OrderStatus
	Note           string
	IdempotencyKey string
}

// TransitionPlan is produced by the service after validation and applied by
// the repository inside a single transaction.
type TransitionPlan struct {
	Target     OrderStatus
	StampAt    time.Time
	Decrements []StockDecrement
	Change     StatusChange
}

// OrderEvent is handed to the notification dispatcher after a transition
// commits. Delivery is fire-and-forget.
type OrderEvent struct {
	OrderID    uint64
	ClientID   uint64
	SellerID   uint64
	PrevStatus OrderStatus
	NewStatus  OrderStatus
	At         time.Time
}
