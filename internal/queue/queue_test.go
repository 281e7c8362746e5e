package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLineOrder(t *testing.T) {
	body, err := json.Marshal(OrderPlacedEvent{
		OrderID:     "ORD-ABCD1234",
		ProductID:   "prod-001",
		ProductName: "Organic Basmati Rice",
		Quantity:    3,
		TotalAmount: 360,
		BuyerName:   "Asha",
		BuyerPhone:  "9000000000",
		PlacedAt:    "2024-06-01T10:00:00Z",
	})
	require.NoError(t, err)

	line, err := FormatLine(OrderPlacedQueue, body)
	require.NoError(t, err)
	assert.Equal(t,
		"[2024-06-01T10:00:00Z] Order placed | order_id=ORD-ABCD1234 | product_id=prod-001 | product=\"Organic Basmati Rice\" | quantity=3 | total=360.00 | buyer=\"Asha\" | phone=9000000000\n",
		line)
}

func TestFormatLineConsultation(t *testing.T) {
	body, _ := json.Marshal(ConsultationBookedEvent{BookingID: "CONS-2024-001", PatientName: "Ravi", Phone: "1", PreferredTime: "morning", Doctor: "Dr. Sharma", BookedAt: "t"})

	line, err := FormatLine(ConsultationBookedQueue, body)
	require.NoError(t, err)
	assert.Contains(t, line, "booking_id=CONS-2024-001")
	assert.Contains(t, line, `patient="Ravi"`)
}

func TestFormatLineRejectsBadInput(t *testing.T) {
	_, err := FormatLine(OrderPlacedQueue, []byte("{"))
	assert.Error(t, err)

	_, err = FormatLine("other.queue", []byte("{}"))
	assert.Error(t, err)
}

func TestConsumerHandleAppends(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsumer("", &buf, nil)

	body, _ := json.Marshal(OrderPlacedEvent{OrderID: "ORD-1"})
	require.NoError(t, c.Handle(OrderPlacedQueue, body))
	require.NoError(t, c.Handle(OrderPlacedQueue, body))

	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), OrderPlacedQueue, OrderPlacedEvent{}))
}

// silentBroker accepts TCP connections and never speaks AMQP.
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestPublishHonoursContextDeadline(t *testing.T) {
	p := NewAMQPPublisher(silentBroker(t), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Publish(ctx, OrderPlacedQueue, OrderPlacedEvent{OrderID: "ORD-1"})

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestPublishExpiredContext(t *testing.T) {
	p := NewAMQPPublisher(silentBroker(t), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, OrderPlacedQueue, OrderPlacedEvent{}), context.Canceled)
}

// blockingSink parks the first Write until release is closed.
type blockingSink struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (s *blockingSink) Write(b []byte) (int, error) {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	return len(b), nil
}

func TestDrainWaitsForInFlightHandle(t *testing.T) {
	sink := &blockingSink{entered: make(chan struct{}), release: make(chan struct{})}
	c := NewConsumer("", sink, nil)

	body, _ := json.Marshal(OrderPlacedEvent{OrderID: "ORD-1"})
	orders := make(chan amqp.Delivery, 1)
	orders <- amqp.Delivery{Body: body}
	bookings := make(chan amqp.Delivery)

	done := make(chan error, 1)
	go func() {
		done <- c.drain(context.Background(), map[string]<-chan amqp.Delivery{
			OrderPlacedQueue:        orders,
			ConsultationBookedQueue: bookings,
		}, func() { close(orders) })
	}()

	<-sink.entered
	close(bookings)

	select {
	case <-done:
		t.Fatal("drain returned while a message was still being handled")
	case <-time.After(100 * time.Millisecond):
	}

	close(sink.release)
	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("drain did not return after the handler finished")
	}
}
