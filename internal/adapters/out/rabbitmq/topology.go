package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKeyStatusChanged is the routing key of every order status event.
const RoutingKeyStatusChanged = "order.status_changed"

// DefaultExchange is used when no exchange is configured.
const DefaultExchange = "installation.orders"

// SetupTopology declares the durable topic exchange events are published to.
// Consumers own their queues and bind them to RoutingKeyStatusChanged.
func SetupTopology(conn *Connection, exchange string) error {
	return conn.WithChannel(func(ch *amqp.Channel) error {
		err := ch.ExchangeDeclare(
			exchange, // name
			"topic",  // type
			true,     // durable
			false,    // auto-deleted
			false,    // internal
			false,    // no-wait
			nil,      // arguments
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", exchange, err)
		}
		return nil
	})
}
