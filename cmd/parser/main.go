package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/supplyhub/yml-feed-parser/cmd/parser/config"
	"github.com/supplyhub/yml-feed-parser/internal/decoder"
	"github.com/supplyhub/yml-feed-parser/internal/fetcher"
	"github.com/supplyhub/yml-feed-parser/internal/handler"
	"github.com/supplyhub/yml-feed-parser/internal/ingestor"
	"github.com/supplyhub/yml-feed-parser/internal/normalizer"
	"github.com/supplyhub/yml-feed-parser/internal/platform/rabbitmq"
	"github.com/supplyhub/yml-feed-parser/internal/platform/storage"
	"github.com/supplyhub/yml-feed-parser/internal/preview"
	"github.com/supplyhub/yml-feed-parser/pkg/v1/commander"
)

const (
	// UserAgent is user agent header value used when fetching feed file.
	UserAgent = "yml-feed-parser/0.0.1"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	ing := ingestor.NewIngestor(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		decoder.Decoder{},
		normalizer.Normalizer{},
		preview.Projector{},
		storage.NewPostgres(pgDB),
		cfg.BatchSize,
	)

	han := handler.NewHandler(conn, ing, &logger)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	cmndr := commander.NewParseCommander(commander.NewRabbitMQSender(conn, cfg.RabbitMQ.RoutingKey))
	httpHandler := handler.NewHTTPHandler(ing, cmndr, &logger)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpHandler.Router(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("http server failed")
			cancel()
		}
	}()

	logger.Info().Msg("feed parser up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	if err := httpServer.Shutdown(context.Background()); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shut down http server")
	}

	// wait for consumer to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
