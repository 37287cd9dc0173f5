package commander

import "context"

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher publishes messages to a routing key.
type RabbitMQPublisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// RabbitMQSender sends commands through a RabbitMQ publisher, always to
// the command routing key it was created with.
type RabbitMQSender struct {
	publisher     RabbitMQPublisher
	cmdRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing to provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, cmdRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:     publisher,
		cmdRoutingKey: cmdRoutingKey,
	}
}

// Send publishes the message to the command routing key.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	return s.publisher.Publish(ctx, s.cmdRoutingKey, msg)
}
