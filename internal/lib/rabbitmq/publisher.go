package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// AppID значение поля app_id в публикуемых сообщениях.
const AppID = "car-inventory"

// NewPublishing сериализует событие в JSON и заполняет служебные поля сообщения:
// уникальный message_id для дедупликации у потребителей, время публикации
// и тип, совпадающий с ключом маршрутизации.
func NewPublishing(routingKey string, message any) (amqp.Publishing, error) {
	const op = "rabbitmq.NewPublishing"
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("%s: %w", op, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		AppId:        AppID,
		Body:         body,
	}, nil
}

// PublishMessage публикует событие в обменник. Канал amqp не принимает контекст,
// поэтому отменённый ctx проверяется до отправки.
func PublishMessage(ctx context.Context, ch *amqp.Channel, exchange, routingKey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	msg, err := NewPublishing(routingKey, message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = ch.Publish(exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
