package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL"`
	BatchSize   uint          `env:"BATCH_SIZE" envDefault:"50"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"yfp-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"yml-feed-parser.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"yml-feed-parser.commands"`
}
