package domain

import "time"

// ActivityBucket counts transitions into a status on a given day.
type ActivityBucket struct {
	Day    time.Time
	Status OrderStatus
	Count  int64
}

// DwellStats describes how long orders sit in From before moving to To.
type DwellStats struct {
	From          OrderStatus
	To            OrderStatus
	Count         int64
	AvgMinutes    float64
	MedianMinutes float64
}

// StuckOrder is an order whose time in its current status exceeds the
// caller's threshold.
type StuckOrder struct {
	OrderID      uint64
	SellerID     uint64
	Status       OrderStatus
	Since        time.Time
	StuckMinutes float64
}

type AuditStats struct {
	WindowDays  int
	Activity    []ActivityBucket
	Dwell       []DwellStats
	StuckOrders []StuckOrder
}
