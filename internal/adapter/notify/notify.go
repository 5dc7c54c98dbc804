package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/tucano1306/CRM-sub005/internal/adapter/config"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"go.uber.org/zap"
)

const requestTimeout = 5 * time.Second

// Dispatcher delivers order events to a webhook endpoint. Fire-and-forget:
// a failed delivery is logged and dropped, it never rolls back a transition.
type Dispatcher struct {
	logger   *zap.Logger
	endpoint string
	client   *http.Client
	queue    chan domain.OrderEvent
}

func NewDispatcher(cfg *config.Notify, log *zap.Logger) (*Dispatcher, error) {
	return &Dispatcher{
		endpoint: cfg.Endpoint,
		logger:   log,
		client:   &http.Client{Timeout: requestTimeout},
		queue:    make(chan domain.OrderEvent, 64),
	}, nil
}

func (d *Dispatcher) ScheduleNotification(event domain.OrderEvent) {
	select {
	case d.queue <- event:
	default:
		// queue full, drop rather than block the request path
		d.logger.Warn("notification queue full, dropping event",
			zap.Uint64("order", event.OrderID))
	}
}

func (d *Dispatcher) StartWorkers(ctx context.Context, workers int) {
	for range workers {
		go func() {
			for {
				select {
				case event := <-d.queue:
					d.deliver(ctx, event)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

type eventPayload struct {
	OrderID    uint64    `json:"order_id"`
	ClientID   uint64    `json:"client_id"`
	SellerID   uint64    `json:"seller_id"`
	PrevStatus string    `json:"prev_status"`
	NewStatus  string    `json:"new_status"`
	At         time.Time `json:"at"`
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.OrderEvent) {
	if d.endpoint == "" {
		d.logger.Debug("no notification endpoint configured",
			zap.Uint64("order", event.OrderID),
			zap.String("status", string(event.NewStatus)))
		return
	}

	body, err := json.Marshal(eventPayload{
		OrderID:    event.OrderID,
		ClientID:   event.ClientID,
		SellerID:   event.SellerID,
		PrevStatus: string(event.PrevStatus),
		NewStatus:  string(event.NewStatus),
		At:         event.At,
	})
	if err != nil {
		d.logger.Error("marshal notification", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		d.logger.Error("build notification request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warn("notification delivery failed",
			zap.Uint64("order", event.OrderID), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		d.logger.Warn("notification endpoint rejected event",
			zap.Uint64("order", event.OrderID),
			zap.Int("status", resp.StatusCode))
	}
}
