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

// UpsertInventory godoc
// @Summary Create or replace an inventory record
// @Description Set the stock level for a product; the product stock mirror is updated in the same transaction
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body object{product_id=int,stock_quantity=int,min_stock_level=int} true "Inventory data"
// @Success 201 {object} object{id=int,product_id=int,stock_quantity=int,min_stock_level=int}
// @Failure 400 {object} object{message=string}
// @Router /api/inventory [post]
func (h *InventoryHandler) UpsertInventoryDoc() {}

// ListInventory godoc
// @Summary List all inventory records
// @Description Get all inventory records joined with their product names
// @Tags Inventory
// @Produce json
// @Success 200 {array} object{id=int,product_id=int,product_name=string,stock_quantity=int,min_stock_level=int}
// @Failure 500 {object} object{message=string}
// @Router /api/inventory [get]
func (h *InventoryHandler) ListInventoryDoc() {}

// GetInventory godoc
// @Summary Get inventory record by ID
// @Description Get a specific inventory record by its ID
// @Tags Inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} object{id=int,product_id=int,stock_quantity=int,min_stock_level=int}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/inventory/{id} [get]
func (h *InventoryHandler) GetInventoryDoc() {}

// UpdateInventory godoc
// @Summary Update an inventory record
// @Description Update stock or threshold; stock changes are synced to the product mirror
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path int true "Inventory ID"
// @Param request body object{stock_quantity=int,min_stock_level=int} true "Inventory data"
// @Success 200 {object} object{id=int,product_id=int,stock_quantity=int,min_stock_level=int}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/inventory/{id} [put]
func (h *InventoryHandler) UpdateInventoryDoc() {}

// DeleteInventory godoc
// @Summary Delete an inventory record
// @Description Delete an inventory record without touching the product
// @Tags Inventory
// @Produce json
// @Param id path int true "Inventory ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/inventory/{id} [delete]
func (h *InventoryHandler) DeleteInventoryDoc() {}
