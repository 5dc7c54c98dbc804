package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
	"go.uber.org/zap"
)

type AuditHandler struct {
	Handler
	service port.Service
}

func NewAuditHandler(service port.Service, logger *zap.Logger) (*AuditHandler, error) {
	return &AuditHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type activityResponse struct {
	Day    time.Time `json:"day"`
	Status string    `json:"status"`
	Count  int64     `json:"count"`
}

type dwellResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	Count         int64   `json:"count"`
	AvgMinutes    float64 `json:"avg_minutes"`
	MedianMinutes float64 `json:"median_minutes"`
}

type stuckResponse struct {
	OrderID      uint64    `json:"order_id"`
	Status       string    `json:"status"`
	Since        time.Time `json:"since"`
	StuckMinutes float64   `json:"stuck_minutes"`
}

type statsResponse struct {
	WindowDays  int                `json:"window_days"`
	Activity    []activityResponse `json:"activity"`
	Dwell       []dwellResponse    `json:"dwell"`
	StuckOrders []stuckResponse    `json:"stuck_orders"`
}

func (ah *AuditHandler) Stats(ctx *gin.Context) {
	days, err := queryInt(ctx, "days", 0)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}
	stuckMinutes, err := queryInt(ctx, "stuckMinutes", 0)
	if err != nil {
		ah.handleValidationError(ctx, err)
		return
	}

	stats, err := ah.service.AuditStats(ctx, getActor(ctx), days,
		time.Duration(stuckMinutes)*time.Minute)
	if err != nil {
		ah.handleError(ctx, err)
		return
	}

	resp := statsResponse{
		WindowDays:  stats.WindowDays,
		Activity:    make([]activityResponse, 0, len(stats.Activity)),
		Dwell:       make([]dwellResponse, 0, len(stats.Dwell)),
		StuckOrders: make([]stuckResponse, 0, len(stats.StuckOrders)),
	}
	for _, bucket := range stats.Activity {
		resp.Activity = append(resp.Activity, activityResponse{
			Day:    bucket.Day,
			Status: string(bucket.Status),
			Count:  bucket.Count,
		})
	}
	for _, stat := range stats.Dwell {
		resp.Dwell = append(resp.Dwell, dwellResponse{
			From:          string(stat.From),
			To:            string(stat.To),
			Count:         stat.Count,
			AvgMinutes:    stat.AvgMinutes,
			MedianMinutes: stat.MedianMinutes,
		})
	}
	for _, order := range stats.StuckOrders {
		resp.StuckOrders = append(resp.StuckOrders, stuckResponse{
			OrderID:      order.OrderID,
			Status:       string(order.Status),
			Since:        order.Since,
			StuckMinutes: order.StuckMinutes,
		})
	}

	ah.handleSuccess(ctx, resp)
}

func queryInt(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrBadRequest
	}
	return value, nil
}
