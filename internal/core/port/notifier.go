package port

import "github.com/tucano1306/CRM-sub005/internal/core/domain"

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	// ScheduleNotification queues an event for delivery. Fire-and-forget:
	// delivery failure never reaches the caller.
	ScheduleNotification(event domain.OrderEvent)
}
