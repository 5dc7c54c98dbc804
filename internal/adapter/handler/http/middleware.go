package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tucano1306/CRM-sub005/internal/core/domain"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

// IdempotencyKeyHeader carries the caller-supplied retry token for
// PATCH /orders/:id/status.
const IdempotencyKeyHeader = "Idempotency-Key"

func authCheck(tokenService port.TokenService, base *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			base.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			base.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			base.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			base.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

func getActor(ctx *gin.Context) domain.Actor {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload).Actor()
}

func getIdempotencyKey(ctx *gin.Context) string {
	return strings.TrimSpace(ctx.Request.Header.Get(IdempotencyKeyHeader))
}
