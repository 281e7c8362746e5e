// Package queue carries marketplace and telemedicine events over RabbitMQ.
package queue

// Queue names.  Both are durable and use the default exchange with the queue
// name as routing key.
const (
	OrderPlacedQueue        = "order.placed"
	ConsultationBookedQueue = "consultation.booked"
)

// OrderPlacedEvent is published after a successful checkout.  It carries
// enough detail for the order log without looking the product up again.
type OrderPlacedEvent struct {
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
	BuyerName   string  `json:"buyer_name"`
	BuyerPhone  string  `json:"buyer_phone"`
	PlacedAt    string  `json:"placed_at"`
}

// ConsultationBookedEvent is published when a teleconsultation is booked.
type ConsultationBookedEvent struct {
	BookingID     string `json:"booking_id"`
	PatientName   string `json:"patient_name"`
	Phone         string `json:"phone"`
	PreferredTime string `json:"preferred_time"`
	Doctor        string `json:"doctor"`
	BookedAt      string `json:"booked_at"`
}
