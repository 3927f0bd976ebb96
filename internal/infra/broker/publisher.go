package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublishFailed = errs.New("failed to publish event")

// AMQPPublisher sends events to a durable topic exchange, routed by event type.
// The connection is opened lazily and reopened after it is lost.
type AMQPPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, exchange string) *AMQPPublisher {
	return &AMQPPublisher{url: url, exchange: exchange}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "marshal event"), ErrPublishFailed)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return errs.Mark(err, ErrPublishFailed)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt.UTC(),
		Type:         event.Type,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		p.reset()
		return errs.Mark(errs.Wrapf(err, "publish %s", event.Type), ErrPublishFailed)
	}

	slog.Debug("event published", "type", event.Type, "reservation_id", event.ReservationID)
	return nil
}

// channel must be called with mu held.
func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Dial:      amqp.DefaultDial(5 * time.Second),
	})
	if err != nil {
		return nil, errs.Wrap(err, "dial broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}

	if err := ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // kind
		true,       // durable
		false,      // autoDelete
		false,      // internal
		false,      // noWait
		nil,        // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event shared.ReservationEvent) error {
	slog.Debug("event dropped, no broker configured", "type", event.Type, "reservation_id", event.ReservationID)
	return nil
}
