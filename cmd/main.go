package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopkhata/billing-service/internal/app"
	"github.com/shopkhata/billing-service/internal/config"
	"github.com/shopkhata/billing-service/internal/events"
	"github.com/shopkhata/billing-service/internal/handler"
	"github.com/shopkhata/billing-service/internal/postgres"
	"github.com/shopkhata/billing-service/internal/repo"
	"github.com/shopkhata/billing-service/internal/service"
	"github.com/shopkhata/billing-service/pkg/cache"
	"github.com/shopkhata/billing-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Billing Service API
// @version         1.0
// @description     Документация HTTP API учёта заказов, черновиков и партнёров доставки
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	noteRepo := repo.NewNoteRepo(db)
	partnerRepo := repo.NewPartnerRepo(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewPublisher(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache, publisher)
	noteService := service.NewNoteService(logger, txManager, noteRepo)
	partnerService := service.NewPartnerService(logger, partnerRepo, conf.Admin)

	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewNoteHandler(logger, noteService),
		handler.NewPartnerHandler(logger, partnerService),
	)
	application.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)
	application.Start()
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
