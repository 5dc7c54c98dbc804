package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"go.uber.org/zap"
)

// errorStatusMap matches via errors.Is so typed errors wrapping a sentinel
// (IllegalTransitionError, InsufficientStockError) land on the right code.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrConflictingData, http.StatusConflict},
	{domain.ErrStaleData, http.StatusConflict},
	{domain.ErrIllegalTransition, http.StatusConflict},
	{domain.ErrInsufficientStock, http.StatusConflict},

	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
	{domain.ErrExpiredToken, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},

	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrUnknownStatus, http.StatusBadRequest},
	{domain.ErrUnknownRole, http.StatusBadRequest},

	{domain.ErrOrderNotReturnable, http.StatusUnprocessableEntity},
	{domain.ErrReturnAlreadyClosed, http.StatusUnprocessableEntity},
	{domain.ErrCreditNoteInactive, http.StatusUnprocessableEntity},
	{domain.ErrCreditNoteExpired, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientCredit, http.StatusPaymentRequired},
}

func statusForError(err error) (int, bool) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status, true
		}
	}
	return http.StatusInternalServerError, false
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, known := statusForError(err)
	if !known {
		h.logger.Error("aborting request", zap.Error(err))
		ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: domain.ErrInternal.Error()})
		return
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, known := statusForError(err)
	if !known {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Error: domain.ErrInternal.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
