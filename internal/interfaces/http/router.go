package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestock/gestock-api/internal/application/auth"
	"github.com/gestock/gestock-api/internal/application/movement"
	"github.com/gestock/gestock-api/internal/application/usecase"
	"github.com/gestock/gestock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArticleUC         *usecase.ArticleUseCase
	SupplierUC        *usecase.SupplierUseCase
	ArticleSupplierUC *usecase.ArticleSupplierUseCase
	LotUC             *usecase.LotUseCase
	WarehouseUC       *usecase.WarehouseUseCase
	StockUC           *usecase.StockUseCase
	MovementUC        *movement.UseCase
	SensorUC          *usecase.SensorUseCase
	TemperatureUC     *usecase.TemperatureUseCase
	AlertUC           *usecase.AlertUseCase
	UserUC            *usecase.UserUseCase
	AuthUC            *auth.UseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Articles
	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC)
	articles.Post("/", articleHandler.Create)
	articles.Get("/", articleHandler.List)
	articles.Get("/search", articleHandler.Search)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Put("/:id", articleHandler.Update)
	articles.Delete("/:id", articleHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/search", supplierHandler.Search)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Article-supplier links
	links := protected.Group("/article-suppliers")
	linkHandler := NewArticleSupplierHandler(deps.ArticleSupplierUC)
	links.Post("/", linkHandler.Create)
	links.Get("/", linkHandler.List)
	links.Get("/search", linkHandler.Search)
	links.Get("/:id", linkHandler.GetByID)
	links.Put("/:id", linkHandler.Update)
	links.Delete("/:id", linkHandler.Delete)

	// Lots
	lots := protected.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Post("/", lotHandler.Create)
	lots.Get("/", lotHandler.List)
	lots.Get("/by-expiry", lotHandler.ListByExpiryDate)
	lots.Get("/by-article/:id", lotHandler.ListByArticle)
	lots.Get("/:id", lotHandler.GetByID)
	lots.Put("/:id", lotHandler.Update)
	lots.Delete("/:id", lotHandler.Delete)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/search", warehouseHandler.SearchByLocation)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Stock lines
	stocks := protected.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Post("/", stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/by-lot/:id", stockHandler.ListByLot)
	stocks.Get("/by-warehouse/:id", stockHandler.ListByWarehouse)
	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", stockHandler.Update)
	stocks.Delete("/:id", stockHandler.Delete)

	// Stock movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Get("/by-lot/:id", movementHandler.ListByLot)
	movements.Get("/by-warehouse/:id", movementHandler.ListByWarehouse)
	movements.Get("/by-type/:type", movementHandler.ListByType)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Sensors
	sensors := protected.Group("/sensors")
	sensorHandler := NewSensorHandler(deps.SensorUC)
	sensors.Post("/", sensorHandler.Create)
	sensors.Get("/", sensorHandler.List)
	sensors.Get("/by-warehouse-location", sensorHandler.ListByWarehouseLocation)
	sensors.Get("/:id", sensorHandler.GetByID)
	sensors.Put("/:id", sensorHandler.Update)
	sensors.Delete("/:id", sensorHandler.Delete)

	// Temperature readings
	temperatures := protected.Group("/temperatures")
	temperatureHandler := NewTemperatureHandler(deps.TemperatureUC)
	temperatures.Post("/", temperatureHandler.Create)
	temperatures.Get("/", temperatureHandler.List)
	temperatures.Get("/by-sensor/:id", temperatureHandler.ListBySensor)
	temperatures.Get("/by-date-range", temperatureHandler.ListByDateRange)
	temperatures.Get("/:id", temperatureHandler.GetByID)
	temperatures.Put("/:id", temperatureHandler.Update)
	temperatures.Delete("/:id", temperatureHandler.Delete)

	// Stock alerts
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Post("/", alertHandler.Create)
	alerts.Get("/", alertHandler.List)
	alerts.Get("/unresolved", alertHandler.ListUnresolved)
	alerts.Get("/by-stock/:id", alertHandler.ListByStock)
	alerts.Post("/:id/resolve", alertHandler.Resolve)
	alerts.Get("/:id", alertHandler.GetByID)
	alerts.Put("/:id", alertHandler.Update)
	alerts.Delete("/:id", alertHandler.Delete)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/search", userHandler.Search)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
