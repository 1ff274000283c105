package main

// @title Shop Backoffice API
// @version 1.0
// @description Back office API for products, orders and inventory with synchronized stock levels
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Product catalog endpoints

// @tag.name Inventory
// @tag.description Inventory ledger endpoints

// @tag.name Orders
// @tag.description Order placement and tracking endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
