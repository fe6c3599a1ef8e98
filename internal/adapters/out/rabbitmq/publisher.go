package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"installation/internal/core/domain/model/order"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageTypeStatusChanged tags status change messages.
const MessageTypeStatusChanged = "order.status_changed"

// Message is the JSON envelope of every published event.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusChangedPayload carries status wire literals.
type StatusChangedPayload struct {
	OrderID    string    `json:"orderId"`
	From       string    `json:"fromStatus"`
	To         string    `json:"toStatus"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher implements ports.EventPublisher.
type Publisher struct {
	conn     *Connection
	exchange string
	logger   *slog.Logger
}

func NewPublisher(conn *Connection, exchange string, logger *slog.Logger) *Publisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		conn:     conn,
		exchange: exchange,
		logger:   logger.With("component", "event_publisher"),
	}
}

// PublishStatusChanged publishes one persistent message per event. Every event is
// attempted; the returned error joins the failures.
func (p *Publisher) PublishStatusChanged(ctx context.Context, events ...order.StatusChangedEvent) error {
	var errList []error
	for _, event := range events {
		msg := newStatusChangedMessage(event)
		if err := p.publish(ctx, RoutingKeyStatusChanged, msg); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			p.exchange, // exchange
			routingKey, // routing key
			false,      // mandatory
			false,      // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Type:         msg.Type,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", p.exchange, routingKey, err)
		}

		p.logger.DebugContext(ctx, "published message",
			"exchange", p.exchange,
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)
		return nil
	})
}

func newStatusChangedMessage(event order.StatusChangedEvent) Message {
	return Message{
		ID:   uuid.New().String(),
		Type: MessageTypeStatusChanged,
		Payload: StatusChangedPayload{
			OrderID:    event.OrderID.String(),
			From:       event.From.String(),
			To:         event.To.String(),
			OccurredAt: event.OccurredAt.UTC(),
		},
		Timestamp: event.OccurredAt.UTC(),
	}
}
