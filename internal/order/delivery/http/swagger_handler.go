package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// CreateOrder godoc
// @Summary Place a new order
// @Description Create an order and decrement the product's inventory atomically
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body object{customer_name=string,customer_email=string,product_id=int,quantity=int,total_amount=number,status=string} true "Order data"
// @Success 201 {object} object{id=int,customer_name=string,product_id=int,quantity=int,status=string}
// @Failure 400 {object} object{message=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary List all orders
// @Description Get all orders ordered by newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} object{id=int,customer_name=string,product_id=int,quantity=int,status=string}
// @Failure 500 {object} object{message=string}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrder godoc
// @Summary Get order by ID
// @Description Get a specific order by its ID
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{id=int,customer_name=string,product_id=int,quantity=int,status=string}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrderDoc() {}

// UpdateOrder godoc
// @Summary Update order status
// @Description Update the status of an order; stock is never restocked on cancellation
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body object{status=string} true "Order status"
// @Success 200 {object} object{id=int,status=string}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/orders/{id} [put]
func (h *OrderHandler) UpdateOrderDoc() {}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order record; the linked inventory is left untouched
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}
