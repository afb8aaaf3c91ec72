package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartmenu-service/config"
	"smartmenu-service/internal/database"
	"smartmenu-service/internal/logger"
	"smartmenu-service/internal/notifier"
	"smartmenu-service/internal/repository"
	"smartmenu-service/internal/service"
	"smartmenu-service/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	hub := notifier.NewHub()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// With brokers configured, created-order events go through Kafka and the
	// consumer feeds the hub. Without them the hub is the bus directly.
	var events service.EventBus = hub
	if len(cfg.KafkaBrokers) > 0 {
		producer := notifier.NewOrderProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		events = producer

		consumer := notifier.NewOrderConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, cfg.KafkaTopic, hub, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Error("order consumer stopped", zap.Error(err))
			}
		}()
	}

	orders := service.NewOrderService(repos, events, log)
	catalog := service.NewCatalogService(repos)

	router := http.Router(orders, catalog, hub, log)

	srv := &nethttp.Server{
		Addr:    cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
