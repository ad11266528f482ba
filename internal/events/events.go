// Package events публикует доменные события инвентаря в RabbitMQ.
//
// Ошибка публикации не отменяет уже выполненную операцию: вызывающий код
// логирует её и продолжает работу.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/car-inventory/internal/config"
	"github.com/magabrotheeeer/car-inventory/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
)

// Publisher отправляет событие с ключом маршрутизации.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// AMQPPublisher публикует события в topic-обменник.
// amqp.Channel не допускает конкурентной публикации, поэтому вызовы сериализуются.
type AMQPPublisher struct {
	log      *slog.Logger
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex
	ch *amqp.Channel
}

// NewAMQPPublisher подключается к брокеру и объявляет обменник.
func NewAMQPPublisher(log *slog.Logger, cfg config.RabbitMQ) (*AMQPPublisher, error) {
	const op = "events.NewAMQPPublisher"

	conn, err := rabbitmq.Connect(cfg.URL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AMQPPublisher{
		log:      log,
		conn:     conn,
		exchange: cfg.Exchange,
		ch:       ch,
	}, nil
}

// Publish сериализует событие в JSON и отправляет его в обменник.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	const op = "events.Publish"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := rabbitmq.PublishMessage(ctx, p.ch, p.exchange, routingKey, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	p.log.Debug("event published", slog.String("routing_key", routingKey))
	return nil
}

// Close закрывает канал и соединение.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil {
		p.log.Warn("failed to close amqp channel", sl.Err(err))
	}
	return p.conn.Close()
}

// NopPublisher отбрасывает события. Используется, когда брокер не настроен.
type NopPublisher struct{}

// Publish ничего не делает.
func (NopPublisher) Publish(context.Context, string, any) error { return nil }
