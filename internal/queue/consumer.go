package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the order and consultation queues into an append-only
// log.  Lines are written to Sink one event per line.
type Consumer struct {
	URL  string
	Sink io.Writer
	Log  *zap.Logger

	mu sync.Mutex // serialises writes to Sink
}

func NewConsumer(url string, sink io.Writer, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{URL: url, Sink: sink, Log: log}
}

// Run connects to the broker and consumes until ctx is cancelled.  Lost
// connections are re-dialled with exponential backoff capped at 30s.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		conn, err := amqp.Dial(c.URL)
		if err != nil {
			c.Log.Warn("event consumer: dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
			if !sleepCtx(ctx, backoff) {
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
		c.Log.Warn("event consumer: consume loop ended, reconnecting", zap.Error(err))
		if !sleepCtx(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.Log.Warn("event consumer: set QoS failed", zap.Error(err))
	}

	streams := make(map[string]<-chan amqp.Delivery, 2)
	for _, q := range []string{OrderPlacedQueue, ConsultationBookedQueue} {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", q, err)
		}
		msgs, err := ch.Consume(q, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("queue consume %s: %w", q, err)
		}
		streams[q] = msgs
	}
	return c.drain(ctx, streams, func() { _ = ch.Close() })
}

// drain handles every stream until ctx is done or one stream closes.  It
// then calls stop, which must close the remaining streams, and waits for
// all loops so no Handle call outlives the connection.
func (c *Consumer) drain(ctx context.Context, streams map[string]<-chan amqp.Delivery, stop func()) error {
	var wg sync.WaitGroup
	errs := make(chan error, len(streams))
	for q, msgs := range streams {
		wg.Add(1)
		go func(queue string, msgs <-chan amqp.Delivery) {
			defer wg.Done()
			for d := range msgs {
				if err := c.Handle(queue, d.Body); err != nil {
					c.Log.Warn("event consumer: handle message failed", zap.String("queue", queue), zap.Error(err))
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
			errs <- fmt.Errorf("%s: deliveries channel closed", queue)
		}(q, msgs)
	}

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-errs:
	}
	stop()
	wg.Wait()
	return err
}

// Handle decodes one message body from queue and appends its log line.
func (c *Consumer) Handle(queue string, body []byte) error {
	line, err := FormatLine(queue, body)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := io.WriteString(c.Sink, line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLine renders a single newline-terminated log line for a message.
func FormatLine(queue string, body []byte) (string, error) {
	switch queue {
	case OrderPlacedQueue:
		var ev OrderPlacedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return "", fmt.Errorf("unmarshal: %w", err)
		}
		return fmt.Sprintf("[%s] Order placed | order_id=%s | product_id=%s | product=%q | quantity=%d | total=%.2f | buyer=%q | phone=%s\n",
			ev.PlacedAt, ev.OrderID, ev.ProductID, ev.ProductName, ev.Quantity, ev.TotalAmount, ev.BuyerName, ev.BuyerPhone), nil
	case ConsultationBookedQueue:
		var ev ConsultationBookedEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return "", fmt.Errorf("unmarshal: %w", err)
		}
		return fmt.Sprintf("[%s] Consultation booked | booking_id=%s | patient=%q | phone=%s | preferred_time=%q | doctor=%q\n",
			ev.BookedAt, ev.BookingID, ev.PatientName, ev.Phone, ev.PreferredTime, ev.Doctor), nil
	}
	return "", errors.New("unknown queue " + queue)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
