package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends an event to a named queue.  Handlers treat failures as
// non-fatal: the HTTP response never depends on the broker.
type Publisher interface {
	Publish(ctx context.Context, queue string, event any) error
}

// NopPublisher drops every event.  It is used when events are disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// AMQPPublisher dials the broker for every publish.  Event volume is a
// handful per minute, so a pooled connection is not worth the reconnect
// bookkeeping.
type AMQPPublisher struct {
	URL string
	Log *zap.Logger
}

func NewAMQPPublisher(url string, log *zap.Logger) *AMQPPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &AMQPPublisher{URL: url, Log: log}
}

// defaultDialTimeout bounds the TCP connect and AMQP handshake when ctx has
// no deadline of its own.
const defaultDialTimeout = 30 * time.Second

// dialCtx connects to url with the connect and handshake bounded by ctx's
// deadline.  amqp.Dial alone would wait up to 30s on a silent broker.
func dialCtx(ctx context.Context, url string) (*amqp.Connection, error) {
	timeout := defaultDialTimeout
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	return amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
}

// Publish declares queue (idempotent, durable) and sends event as a
// persistent JSON message.
func (p *AMQPPublisher) Publish(ctx context.Context, queue string, event any) error {
	log := p.Log.With(zap.String("queue", queue))

	body, err := json.Marshal(event)
	if err != nil {
		log.Warn("marshal event failed", zap.Error(err))
		return err
	}

	conn, err := dialCtx(ctx, p.URL)
	if err != nil {
		log.Warn("rabbitmq dial failed", zap.Error(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn("rabbitmq channel open failed", zap.Error(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Warn("rabbitmq queue declare failed", zap.Error(err))
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		log.Warn("rabbitmq publish failed", zap.Error(err))
		return err
	}
	return nil
}
