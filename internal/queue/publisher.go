package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends ticket events to RabbitMQ over one long-lived channel.
type Publisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
}

// Dial connects to the broker at url and declares the ticket queue.  The
// queue is durable so messages survive broker restarts.
func Dial(url string, log *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}
	if _, err := ch.QueueDeclare(TicketQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	return &Publisher{conn: conn, ch: ch, log: log}, nil
}

// PublishTicketIssued publishes ev as a persistent JSON message with a fresh
// message id.  Errors are logged and returned; callers treat them as
// best-effort since the ticket has already been issued.
func (p *Publisher) PublishTicketIssued(ctx context.Context, ev TicketIssuedEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal ticket event: %w", err)
	}
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         TicketQueue,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, "", TicketQueue, false, false, msg); err != nil {
		p.log.Warn("rabbitmq publish failed",
			zap.Uint64("ticket_id", ev.TicketID),
			zap.Error(err))
		return err
	}
	return nil
}

// Close shuts down the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
