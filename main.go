package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ecomm/configs"
	"ecomm/middlewares"
	"ecomm/pkg/events"
	"ecomm/pkg/logger"
	"ecomm/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(cfg.LogLevel)

	configs.ConnectDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(); err != nil {
		log.Warn().Err(err).Msg("admin seed failed")
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Warn().Err(err).Msg("catalog seed failed")
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).
			Msg("publishing order events to kafka")
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log), middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, configs.DB(), cfg, publisher, log)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	// flush any buffered order events before the process exits
	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("publisher close")
	}
}
