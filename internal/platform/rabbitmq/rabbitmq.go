package rabbitmq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc handles a single consumed message body.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ publishes to one exchange and consumes queue deliveries.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ opens a channel on the connection and returns a client
// bound to the provided exchange.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	return &RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Publish publishes a JSON message to the routing key on the client's exchange.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	return mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        message,
		},
	)
}

// Consume starts consuming the queue in the background and feeds every
// delivery body to the handler. Handler and settlement errors come back
// on the returned channel. Consuming stops when the context is closed or
// the broker closes the delivery stream.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // manual acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

// Done returns a channel closed once consuming has fully stopped.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for delivery := range deliveries {
		handlerErr := handler(ctx, delivery.Body)
		if handlerErr != nil {
			_ = pushError(ctx, handlerErr, consumingErrors)
		}

		if err := mq.settle(ctx, &delivery, handlerErr == nil, consumingErrors); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// settle acks a successfully handled delivery or nacks a failed one
// without requeueing. A settlement failure is reported on the errors
// channel; a closed context while reporting stops the consumer.
func (mq *RabbitMQ) settle(
	ctx context.Context,
	delivery *amqp.Delivery,
	handled bool,
	consumingErrors chan error,
) error {
	var err error
	if handled {
		err = delivery.Ack(false)
	} else {
		err = delivery.Nack(false, false)
	}
	if err == nil {
		return nil
	}

	return pushError(ctx, fmt.Errorf("can't settle message: %w", err), consumingErrors)
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
