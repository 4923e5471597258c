package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// TicketLogFile is the file, relative to the consumer's directory, that
// receives one line per issued ticket.
const TicketLogFile = "tickets.log"

// Consumer drains the ticket queue into a log file.
type Consumer struct {
	URL string
	Dir string
	Log *zap.Logger
}

// Run connects to the broker and consumes until ctx is done, reconnecting
// with exponential backoff (capped at 30s) whenever the connection drops.
// It returns ctx.Err() once ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.Log.Warn("ticket-consumer: dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.Log.Warn("ticket-consumer: consume loop ended; reconnecting", zap.Error(err))
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.Log.Warn("ticket-consumer: set QoS failed", zap.Error(err))
	}
	if _, err := ch.QueueDeclare(TicketQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, TicketQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := c.handle(d.Body); err != nil {
			c.Log.Error("ticket-consumer: handle message failed", zap.String("message_id", d.MessageId), zap.Error(err))
			_ = d.Nack(false, false) // reject without requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func (c *Consumer) handle(body []byte) error {
	var ev TicketIssuedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", c.Dir, err)
	}
	f, err := os.OpenFile(filepath.Join(c.Dir, TicketLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open ticket log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatLine(ev)); err != nil {
		return fmt.Errorf("write ticket log: %w", err)
	}
	return nil
}

func formatLine(ev TicketIssuedEvent) string {
	return fmt.Sprintf("[%s] Ticket issued | ticket_id=%d | customer=%q | show_id=%d | cinema=%q | movie=%q | starts_at=%s | seats=%d\n",
		ev.BookedAt, ev.TicketID, ev.CustomerName, ev.ShowID, ev.CinemaName, ev.MovieTitle, ev.StartsAt, ev.Seats)
}
