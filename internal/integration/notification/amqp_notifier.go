package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
)

const publishTimeout = 5 * time.Second

// PushMessage is the body published for the push delivery worker.
type PushMessage struct {
	UserID    string    `json:"user_id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPushMessage builds the queue message for a notification.
func NewPushMessage(notification entity.Notification) PushMessage {
	createdAt := notification.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return PushMessage{
		UserID:    notification.UserID.String(),
		Kind:      notification.Kind,
		Title:     notification.Title,
		Body:      notification.Body,
		CreatedAt: createdAt,
	}
}

// publisher is the subset of *amqp091.Channel used by AMQPNotifier.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPNotifier publishes notifications to the push delivery queue.
type AMQPNotifier struct {
	conn         *amqp091.Connection
	channel      publisher
	closeChannel func() error
	exchangeName string
	queueName    string
}

// NewAMQPNotifier dials the broker and declares a durable direct exchange bound to queueName.
func NewAMQPNotifier(url, exchangeName, queueName string) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(channel, exchangeName, queueName); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return &AMQPNotifier{
		conn:         conn,
		channel:      channel,
		closeChannel: channel.Close,
		exchangeName: exchangeName,
		queueName:    queueName,
	}, nil
}

func declareTopology(channel *amqp091.Channel, exchangeName, queueName string) error {
	if err := channel.ExchangeDeclare(exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// Routing key equals the queue name on the direct exchange.
	if err := channel.QueueBind(queueName, queueName, exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// Schedule publishes a persistent JSON message. There is no retry.
func (n *AMQPNotifier) Schedule(ctx context.Context, notification entity.Notification) error {
	body, err := json.Marshal(NewPushMessage(notification))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchangeName,
		n.queueName,
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published push notification",
		"user_id", notification.UserID,
		"kind", notification.Kind,
		"exchange", n.exchangeName,
		"queue", n.queueName,
	)
	return nil
}

// Close closes the channel and the connection.
func (n *AMQPNotifier) Close() error {
	if n.closeChannel != nil {
		n.closeChannel()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

var _ adapter.Notifier = (*AMQPNotifier)(nil)
