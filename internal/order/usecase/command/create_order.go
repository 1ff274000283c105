package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/shop-backoffice/internal/order/domain"
	"github.com/tair/shop-backoffice/kafka"
	"github.com/tair/shop-backoffice/pkg/apperrors"
	"github.com/tair/shop-backoffice/pkg/logger"
)

// EventPublisher is the slice of the Kafka publisher the fulfillment path
// needs. Events are best-effort: a publish failure never fails the order.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
	PublishLowStock(ctx context.Context, event kafka.LowStockEvent) error
}

// CreateOrderCommand represents the command to place an order
type CreateOrderCommand struct {
	CustomerName  string
	CustomerEmail string
	ProductID     uint
	Quantity      int
	TotalAmount   float64
	Status        string
}

// CreateOrderHandler handles order fulfillment
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	publisher EventPublisher
}

// NewCreateOrderHandler creates a new create order handler. publisher may be
// nil when eventing is disabled.
func NewCreateOrderHandler(repo domain.OrderRepository, publisher EventPublisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, publisher: publisher}
}

// Handle executes the fulfillment command: the order insert and both ledger
// writes happen in one atomic unit inside the repository. The ledger may go
// negative; insufficient stock is not a rejection.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if cmd.CustomerName == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}
	if cmd.CustomerEmail == "" {
		return nil, apperrors.InvalidInput("customer email is required")
	}
	if cmd.ProductID == 0 {
		return nil, apperrors.InvalidInput("product_id is required")
	}
	if cmd.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be greater than 0")
	}
	if cmd.TotalAmount < 0 {
		return nil, apperrors.InvalidInput("total amount cannot be negative")
	}

	status := cmd.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !domain.ValidStatus(status) {
		return nil, apperrors.InvalidInput("invalid order status %q", cmd.Status)
	}

	order := &domain.Order{
		CustomerName:  cmd.CustomerName,
		CustomerEmail: cmd.CustomerEmail,
		ProductID:     cmd.ProductID,
		Quantity:      cmd.Quantity,
		TotalAmount:   cmd.TotalAmount,
		Status:        status,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	inv, err := h.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	h.publishEvents(ctx, order, inv.StockQuantity, inv.MinStockLevel)

	return order, nil
}

func (h *CreateOrderHandler) publishEvents(ctx context.Context, order *domain.Order, stockQuantity, minStockLevel int) {
	if h.publisher == nil {
		return
	}

	err := h.publisher.PublishOrderPlaced(ctx, kafka.OrderPlacedEvent{
		OrderID:       order.ID,
		ProductID:     order.ProductID,
		Quantity:      order.Quantity,
		TotalAmount:   order.TotalAmount,
		CustomerEmail: order.CustomerEmail,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order placed event")
	}

	if stockQuantity > minStockLevel {
		return
	}

	err = h.publisher.PublishLowStock(ctx, kafka.LowStockEvent{
		ProductID:     order.ProductID,
		StockQuantity: stockQuantity,
		MinStockLevel: minStockLevel,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).Uint("product_id", order.ProductID).Msg("Failed to publish low stock event")
	}
}
