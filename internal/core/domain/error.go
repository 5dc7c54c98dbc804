package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")
	ErrStaleData       = errors.New("data changed by a concurrent request")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrUnknownRole         = errors.New("unknown role")
	ErrIllegalTransition   = errors.New("status transition is not allowed")
	ErrInsufficientStock   = errors.New("product stock is not enough")
	ErrOrderNotReturnable  = errors.New("order is not in a returnable state")
	ErrReturnAlreadyClosed = errors.New("return is already resolved")
	ErrCreditNoteInactive  = errors.New("credit note is not active")
	ErrCreditNoteExpired   = errors.New("credit note has expired")
	ErrInsufficientCredit  = errors.New("credit note balance is not enough")
)

// IllegalTransitionError names the rejected edge. It unwraps to
// ErrIllegalTransition so handler-level mapping keeps working.
type IllegalTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed", e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }

// InsufficientStockError names the short product and the shortfall.
type InsufficientStockError struct {
	ProductID   uint64
	ProductName string
	Required    int64
	Available   int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): required %d, available %d",
		e.ProductID, e.ProductName, e.Required, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

func (e *InsufficientStockError) Shortfall() int64 { return e.Required - e.Available }
