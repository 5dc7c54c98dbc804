package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "REQUESTED"
	ReturnStatusApproved  ReturnStatus = "APPROVED"
	ReturnStatusRejected  ReturnStatus = "REJECTED"
)

type Return struct {
	ID         uuid.UUID
	OrderID    uint64
	ClientID   uint64
	SellerID   uint64
	Reason     string
	Status     ReturnStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// CreditNote is issued when a return is approved. Balance only ever
// decreases and never goes below zero.
type CreditNote struct {
	ID        uuid.UUID
	ReturnID  uuid.UUID
	ClientID  uint64
	SellerID  uint64
	Amount    decimal.Decimal
	Balance   decimal.Decimal
	Active    bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (n *CreditNote) Redeemable(now time.Time) error {
	if !n.Active {
		return ErrCreditNoteInactive
	}
	if now.After(n.ExpiresAt) {
		return ErrCreditNoteExpired
	}
	return nil
}
