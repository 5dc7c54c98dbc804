package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

type createOrderRequest struct {
	SellerID uint64             `json:"seller_id"`
	Items    []orderItemRequest `json:"items"`
}

type orderItemResponse struct {
	ProductID    uint64          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Confirmed    bool            `json:"confirmed"`
	AvailableQty *int64          `json:"available_qty,omitempty"`
	Note         string          `json:"note,omitempty"`
}

type orderResponse struct {
	ID          uint64              `json:"id"`
	ClientID    uint64              `json:"client_id"`
	SellerID    uint64              `json:"seller_id"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"status"`
	Items       []orderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	ConfirmedAt *time.Time          `json:"confirmed_at,omitempty"`
	DeliveredAt *time.Time          `json:"delivered_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	CanceledAt  *time.Time          `json:"canceled_at,omitempty"`
}

func newOrderResponse(o *domain.Order) orderResponse {
	resp := orderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		SellerID:    o.SellerID,
		Total:       o.Total,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		ConfirmedAt: o.ConfirmedAt,
		DeliveredAt: o.DeliveredAt,
		CompletedAt: o.CompletedAt,
		CanceledAt:  o.CanceledAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Confirmed:    item.Confirmed,
			AvailableQty: item.AvailableQty,
			Note:         item.Note,
		})
	}
	return resp
}

func orderIDParam(ctx *gin.Context) (uint64, error) {
	return strconv.ParseUint(ctx.Param("id"), 10, 64)
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	actor := getActor(ctx)

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	order := &domain.Order{
		ClientID: actor.ID,
		SellerID: req.SellerID,
		Items:    items,
	}

	newOrder, err := oh.service.CreateOrder(ctx, actor, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(newOrder), http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	actor := getActor(ctx)

	list, err := oh.service.ListOrders(ctx, actor)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, getActor(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note,omitempty"`
}

func (oh *OrderHandler) UpdateStatus(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := updateStatusRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	target, err := domain.ToOrderStatus(req.Status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	order, err := oh.service.TransitionOrder(ctx, getActor(ctx), domain.TransitionRequest{
		OrderID:        orderID,
		Target:         target,
		Note:           req.Note,
		IdempotencyKey: getIdempotencyKey(ctx),
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type historyResponse struct {
	ID         string    `json:"id"`
	PrevStatus string    `json:"prev_status"`
	NewStatus  string    `json:"new_status"`
	ActorID    uint64    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (oh *OrderHandler) OrderHistory(ctx *gin.Context) {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	history, err := oh.service.OrderHistory(ctx, getActor(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]historyResponse, 0, len(history))
	for _, change := range history {
		result = append(result, historyResponse{
			ID:         change.ID.String(),
			PrevStatus: string(change.PrevStatus),
			NewStatus:  string(change.NewStatus),
			ActorID:    change.ActorID,
			ActorRole:  string(change.ActorRole),
			Note:       change.Note,
			CreatedAt:  change.CreatedAt,
		})
	}

	oh.handleSuccess(ctx, result)
}
