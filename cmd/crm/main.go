package main

import (
	"context"
	"fmt"

	"github.com/tucano1306/CRM-sub005/internal/adapter/auth"
	"github.com/tucano1306/CRM-sub005/internal/adapter/config"
	"github.com/tucano1306/CRM-sub005/internal/adapter/handler/http"
	"github.com/tucano1306/CRM-sub005/internal/adapter/logger"
	"github.com/tucano1306/CRM-sub005/internal/adapter/notify"
	"github.com/tucano1306/CRM-sub005/internal/adapter/storage"
	"github.com/tucano1306/CRM-sub005/internal/adapter/storage/repository"
	"github.com/tucano1306/CRM-sub005/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	dispatcher, err := notify.NewDispatcher(conf.Notify, log.Named("Notify"))
	if err != nil {
		log.Error("notify dispatcher creating error", zap.Error(err))
		return
	}
	dispatcher.StartWorkers(ctx, conf.Notify.Workers)

	svc, err := service.NewService(repo, tokenService, dispatcher, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	auditHandler, err := http.NewAuditHandler(svc, log.Named("Audit handler"))
	if err != nil {
		log.Error("audit handler creating error", zap.Error(err))
		return
	}
	creditNoteHandler, err := http.NewCreditNoteHandler(svc, log.Named("Credit note handler"))
	if err != nil {
		log.Error("credit note handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		orderHandler, userHandler, auditHandler, creditNoteHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
