package domain

type OrderStatus string

// remember to add new statuses to transitionEdges as well
const (
	OrderStatusPending            OrderStatus = "PENDING"
	OrderStatusReviewing          OrderStatus = "REVIEWING"
	OrderStatusConfirmed          OrderStatus = "CONFIRMED"
	OrderStatusPaymentPending     OrderStatus = "PAYMENT_PENDING"
	OrderStatusPaid               OrderStatus = "PAID"
	OrderStatusPreparing          OrderStatus = "PREPARING"
	OrderStatusReadyForPickup     OrderStatus = "READY_FOR_PICKUP"
	OrderStatusInDelivery         OrderStatus = "IN_DELIVERY"
	OrderStatusPartiallyDelivered OrderStatus = "PARTIALLY_DELIVERED"
	OrderStatusDelivered          OrderStatus = "DELIVERED"
	OrderStatusCompleted          OrderStatus = "COMPLETED"
	OrderStatusCanceled           OrderStatus = "CANCELED"
)

// transitionEdges is the single source of truth for the order lifecycle.
// Every entry point must go through CanTransition, nobody keeps a private
// copy of the allowed-status list.
var transitionEdges = map[OrderStatus][]OrderStatus{
	OrderStatusPending:            {OrderStatusReviewing, OrderStatusCanceled},
	OrderStatusReviewing:          {OrderStatusConfirmed, OrderStatusCanceled},
	OrderStatusConfirmed:          {OrderStatusPreparing, OrderStatusPaymentPending, OrderStatusCanceled},
	OrderStatusPaymentPending:     {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:               {OrderStatusPreparing, OrderStatusCanceled},
	OrderStatusPreparing:          {OrderStatusReadyForPickup, OrderStatusCanceled},
	OrderStatusReadyForPickup:     {OrderStatusInDelivery, OrderStatusCanceled},
	OrderStatusInDelivery:         {OrderStatusDelivered, OrderStatusPartiallyDelivered, OrderStatusCanceled},
	OrderStatusPartiallyDelivered: {OrderStatusDelivered, OrderStatusCanceled},
	OrderStatusDelivered:          {OrderStatusCompleted, OrderStatusCanceled},
	OrderStatusCompleted:          {},
	OrderStatusCanceled:           {},
}

// fulfillmentStatuses are the targets that consume stock on entry.
var fulfillmentStatuses = map[OrderStatus]struct{}{
	OrderStatusCompleted: {},
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := transitionEdges[status]; ok {
		return status, nil
	}
	return "", ErrUnknownStatus
}

func OrderStatuses() []OrderStatus {
	result := make([]OrderStatus, 0, len(transitionEdges))
	for status := range transitionEdges {
		result = append(result, status)
	}
	return result
}

// CanTransition reports whether the edge from→to is part of the lifecycle
// graph. It returns an IllegalTransitionError naming the pair otherwise.
func CanTransition(from, to OrderStatus) error {
	for _, next := range transitionEdges[from] {
		if next == to {
			return nil
		}
	}
	return &IllegalTransitionError{From: from, To: to}
}

// Transitions returns the allowed targets from the given status.
func Transitions(from OrderStatus) []OrderStatus {
	edges := transitionEdges[from]
	result := make([]OrderStatus, len(edges))
	copy(result, edges)
	return result
}

func (s OrderStatus) Terminal() bool {
	return len(transitionEdges[s]) == 0
}

// Fulfillment reports whether entering the status decrements stock.
func (s OrderStatus) Fulfillment() bool {
	_, ok := fulfillmentStatuses[s]
	return ok
}
