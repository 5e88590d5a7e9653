package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/joho/godotenv"

	"github.com/logimart/shipment-service/internal/api"
	"github.com/logimart/shipment-service/internal/core/service"
	"github.com/logimart/shipment-service/internal/graph"
	"github.com/logimart/shipment-service/internal/infrastructure/config"
	"github.com/logimart/shipment-service/internal/infrastructure/db/postgres"
	"github.com/logimart/shipment-service/internal/infrastructure/db/redis"
	"github.com/logimart/shipment-service/internal/infrastructure/marketplace"
	"github.com/logimart/shipment-service/pkg/logger"
)

const connectTimeout = 10 * time.Second

func main() {
	// .env is optional; real environments configure through the process env.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.Database.URL, connectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema initialisation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	gateway := marketplace.NewClient(marketplace.Config{
		UserServiceURL:    cfg.Marketplace.UserServiceURL,
		OrderServiceURL:   cfg.Marketplace.OrderServiceURL,
		PaymentServiceURL: cfg.Marketplace.PaymentServiceURL,
		Timeout:           cfg.Marketplace.Timeout,
	}, logger.Component("marketplace"))

	customers := postgres.NewCustomerRepository(pool)
	shipments := postgres.NewShipmentRepository(pool)
	tracking := postgres.NewTrackingRepository(pool)

	resolver := service.NewCustomerResolver(customers, gateway, logger.Component("customer-resolver"))
	enricher := service.NewContextEnricher(gateway, logger.Component("context-enricher"))
	shipmentService := service.NewShipmentService(shipments, tracking, resolver, enricher, logger.Component("shipment-service"))

	schema := graphqlgo.MustParseSchema(graph.Schema, graph.NewResolver(shipmentService, logger.Component("graphql")))

	e := api.NewRouter(schema, pool, rdb, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("shipment service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shipment service stopped")
}
