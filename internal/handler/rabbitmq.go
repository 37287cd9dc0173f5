package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/supplyhub/yml-feed-parser/internal/platform/models"
	"github.com/supplyhub/yml-feed-parser/internal/platform/rabbitmq"
	"github.com/supplyhub/yml-feed-parser/pkg/v1/commander"
)

// Ingestor ingests feed documents from parse commands.
type Ingestor interface {
	Ingest(ctx context.Context, cmd models.ParseCommand) error
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq      *rabbitmq.RabbitMQ
	ingestor Ingestor
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, ingestor Ingestor, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:      rmq,
		ingestor: ingestor,
		logger:   logger,
	}
}

// Start starts consuming and handling parse commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeCommand(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("feedUrl", cmd.FeedURL).
			Str("templateId", cmd.TemplateID).
			Msg("ingestion started")

		if err := h.ingestor.Ingest(ctx, models.ParseCommand{
			FeedURL:    cmd.FeedURL,
			TemplateID: cmd.TemplateID,
			StoreID:    cmd.StoreID,
		}); err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}

		h.logger.Debug().
			Str("feedUrl", cmd.FeedURL).
			Str("templateId", cmd.TemplateID).
			Msg("ingestion finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeCommand(msg []byte) (*commander.ParseCommand, error) {
	var cmd commander.ParseCommand
	if err := json.Unmarshal(msg, &cmd); err != nil {
		return nil, fmt.Errorf("can't decode parse command: %w", err)
	}

	return &cmd, nil
}
