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

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product and provision its inventory record in the same transaction
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,category=string,price=number,image=string,stock_quantity=int} true "Product data"
// @Success 201 {object} object{id=int,name=string,price=number,stock_quantity=int}
// @Failure 400 {object} object{message=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List all products
// @Description Get all products ordered by newest first
// @Tags Products
// @Produce json
// @Success 200 {array} object{id=int,name=string,price=number,stock_quantity=int}
// @Failure 500 {object} object{message=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product by its ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{id=int,name=string,price=number,stock_quantity=int}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update a product; stock_quantity changes are synced to inventory
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,category=string,price=number,image=string,stock_quantity=int} true "Product data"
// @Success 200 {object} object{id=int,name=string,price=number,stock_quantity=int}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product; its inventory record is removed by cascade
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// GetStats godoc
// @Summary Get product statistics
// @Description Get catalog statistics
// @Tags Products
// @Produce json
// @Success 200 {object} object{total_products=int}
// @Failure 500 {object} object{message=string}
// @Router /api/products/stats [get]
func (h *ProductHandler) GetStatsDoc() {}
