package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"seatly/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DefaultAMQPQueue = "seat.checkout"

// ErrNotConfirmed is returned when the broker nacks a checkout intent
var ErrNotConfirmed = errors.New("broker did not confirm checkout intent")

type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// amqpChannel publishes to a queue through the default exchange. A nil
// confirmation means the channel is not in confirm mode.
type amqpChannel interface {
	Publish(ctx context.Context, queue string, msg amqp.Publishing) (confirmation, error)
	IsClosed() bool
	Close() error
}

type amqpDialer func() (amqpChannel, error)

// AMQPPublisher publishes checkout intents to a durable RabbitMQ queue and
// waits for the broker to confirm each one. A dropped connection is redialed
// on the next publish.
type AMQPPublisher struct {
	mu      sync.Mutex
	dial    amqpDialer
	channel amqpChannel
	queue   string
	log     *logger.Logger
}

// NewAMQPPublisher dials url and declares queue so a bad broker address
// fails at startup.
func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	if queue == "" {
		queue = DefaultAMQPQueue
	}

	p := newAMQPPublisher(dialConfirmChannel(url, queue), queue)
	if _, err := p.current(); err != nil {
		return nil, err
	}
	return p, nil
}

func newAMQPPublisher(dial amqpDialer, queue string) *AMQPPublisher {
	return &AMQPPublisher{
		dial:  dial,
		queue: queue,
		log:   logger.GetDefault(),
	}
}

func (p *AMQPPublisher) PublishCheckout(ctx context.Context, intent *Intent) error {
	body, err := intent.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal checkout intent: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    intent.IntentID.String(),
		Timestamp:    intent.CreatedAt,
		Type:         "seat_checkout",
		Headers: amqp.Table{
			"session_id": intent.SessionID,
			"event_id":   intent.EventID,
			"seat_count": int32(len(intent.Seats)),
		},
		Body: body,
	}

	err = p.publish(ctx, msg)
	if errors.Is(err, amqp.ErrClosed) {
		p.log.Warn("RabbitMQ channel closed, reconnecting",
			slog.String("queue", p.queue),
			slog.String("intent_id", intent.IntentID.String()),
		)
		err = p.publish(ctx, msg)
	}
	if err != nil {
		return fmt.Errorf("failed to publish checkout intent to RabbitMQ: %w", err)
	}

	p.log.DebugWithContext(ctx, "Checkout intent confirmed", map[string]interface{}{
		"queue":     p.queue,
		"intent_id": intent.IntentID.String(),
		"sent_at":   time.Now().UTC(),
	})
	return nil
}

func (p *AMQPPublisher) publish(ctx context.Context, msg amqp.Publishing) error {
	ch, err := p.current()
	if err != nil {
		return err
	}

	conf, err := ch.Publish(ctx, p.queue, msg)
	if err != nil {
		if errors.Is(err, amqp.ErrClosed) {
			p.drop(ch)
		}
		return err
	}
	if conf == nil {
		return nil
	}

	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return err
	}
	if !acked {
		return ErrNotConfirmed
	}
	return nil
}

// current returns the open channel, dialing a new one when it was closed
func (p *AMQPPublisher) current() (amqpChannel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}

	ch, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.channel = ch
	return ch, nil
}

func (p *AMQPPublisher) drop(ch amqpChannel) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == ch {
		_ = ch.Close()
		p.channel = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return nil
	}
	err := p.channel.Close()
	p.channel = nil
	return err
}

// confirmChannel is a confirm-mode channel that owns its connection
type confirmChannel struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func dialConfirmChannel(url, queue string) amqpDialer {
	return func() (amqpChannel, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("failed to dial RabbitMQ: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
		}

		if err := ch.Confirm(false); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
		}

		if _, err := ch.QueueDeclare(
			queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}

		return &confirmChannel{conn: conn, ch: ch}, nil
	}
}

// Publish goes through the default exchange, which routes by queue name
func (c *confirmChannel) Publish(ctx context.Context, queue string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, nil
	}
	return dc, nil
}

func (c *confirmChannel) IsClosed() bool {
	return c.ch.IsClosed() || c.conn.IsClosed()
}

func (c *confirmChannel) Close() error {
	err := c.ch.Close()
	if cerr := c.conn.Close(); err == nil || errors.Is(err, amqp.ErrClosed) {
		err = cerr
	}
	if errors.Is(err, amqp.ErrClosed) {
		return nil
	}
	return err
}
