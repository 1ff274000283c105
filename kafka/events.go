package kafka

import "time"

// OrderPlacedEvent is emitted after a fulfillment unit of work commits
type OrderPlacedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       uint      `json:"order_id"`
	ProductID     uint      `json:"product_id"`
	Quantity      int       `json:"quantity"`
	TotalAmount   float64   `json:"total_amount"`
	CustomerEmail string    `json:"customer_email"`
	Timestamp     time.Time `json:"timestamp"`
}

// LowStockEvent is emitted when a ledger write leaves a product at or below
// its reorder threshold
type LowStockEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	ProductID     uint      `json:"product_id"`
	StockQuantity int       `json:"stock_quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	Timestamp     time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeOrderPlaced = "order.placed"
	EventTypeLowStock    = "stock.low"
)

// Kafka topics
const (
	TopicOrderPlaced = "order-placed"
	TopicLowStock    = "stock-low"
)
