package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
	"go.uber.org/zap"
)

type CreditNoteHandler struct {
	Handler
	service port.Service
}

func NewCreditNoteHandler(service port.Service, logger *zap.Logger) (*CreditNoteHandler, error) {
	return &CreditNoteHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type openReturnRequest struct {
	OrderID uint64 `json:"order_id" binding:"required"`
	Reason  string `json:"reason,omitempty"`
}

type returnResponse struct {
	ID         string     `json:"id"`
	OrderID    uint64     `json:"order_id"`
	Reason     string     `json:"reason,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type creditNoteResponse struct {
	ID        string          `json:"id"`
	ReturnID  string          `json:"return_id"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Active    bool            `json:"active"`
	IssuedAt  time.Time       `json:"issued_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

func newCreditNoteResponse(n *domain.CreditNote) creditNoteResponse {
	return creditNoteResponse{
		ID:        n.ID.String(),
		ReturnID:  n.ReturnID.String(),
		Amount:    n.Amount,
		Balance:   n.Balance,
		Active:    n.Active,
		IssuedAt:  n.IssuedAt,
		ExpiresAt: n.ExpiresAt,
	}
}

func (ch *CreditNoteHandler) OpenReturn(ctx *gin.Context) {
	req := openReturnRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	rtn, err := ch.service.OpenReturn(ctx, getActor(ctx), req.OrderID, req.Reason)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, returnResponse{
		ID:        rtn.ID.String(),
		OrderID:   rtn.OrderID,
		Reason:    rtn.Reason,
		Status:    string(rtn.Status),
		CreatedAt: rtn.CreatedAt,
	}, http.StatusCreated)
}

func (ch *CreditNoteHandler) ApproveReturn(ctx *gin.Context) {
	returnID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	note, err := ch.service.ApproveReturn(ctx, getActor(ctx), returnID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccessWithStatus(ctx, newCreditNoteResponse(note), http.StatusCreated)
}

func (ch *CreditNoteHandler) ListCreditNotes(ctx *gin.Context) {
	list, err := ch.service.ListCreditNotes(ctx, getActor(ctx))
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]creditNoteResponse, 0, len(list))
	for _, note := range list {
		result = append(result, newCreditNoteResponse(note))
	}

	ch.handleSuccess(ctx, result)
}

type redeemRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (ch *CreditNoteHandler) RedeemCreditNote(ctx *gin.Context) {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	req := redeemRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ch.handleValidationError(ctx, err)
		return
	}

	note, err := ch.service.RedeemCreditNote(ctx, getActor(ctx), noteID, amount)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newCreditNoteResponse(note))
}
