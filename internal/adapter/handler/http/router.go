package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tucano1306/CRM-sub005/internal/adapter/config"
	"github.com/tucano1306/CRM-sub005/internal/core/port"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	userHandler *UserHandler,
	auditHandler *AuditHandler,
	creditNoteHandler *CreditNoteHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	metrics := newServerMetrics()
	router.Use(metrics.middleware())
	router.GET("/metrics", metricsHandler())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	base := NewHandler(logger)

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService, base))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
			orders.GET("/:id/history", orderHandler.OrderHistory)
		}

		returns := api.Group("/returns")
		{
			returns.Use(authCheck(tokenService, base))
			returns.POST("", creditNoteHandler.OpenReturn)
			returns.POST("/:id/approve", creditNoteHandler.ApproveReturn)
		}

		notes := api.Group("/credit-notes")
		{
			notes.Use(authCheck(tokenService, base))
			notes.GET("", creditNoteHandler.ListCreditNotes)
			notes.POST("/:id/redeem", creditNoteHandler.RedeemCreditNote)
		}

		audit := api.Group("/audit")
		{
			audit.Use(authCheck(tokenService, base))
			audit.GET("/stats", auditHandler.Stats)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
