package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gestock/gestock-api/internal/application/auth"
	"github.com/gestock/gestock-api/internal/application/movement"
	"github.com/gestock/gestock-api/internal/application/usecase"
	"github.com/gestock/gestock-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestock/gestock-api/internal/interfaces/http"
	"github.com/gestock/gestock-api/pkg/config"
	"github.com/gestock/gestock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	articleRepo := postgres.NewArticleRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	linkRepo := postgres.NewArticleSupplierRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	sensorRepo := postgres.NewSensorRepository(pool)
	readingRepo := postgres.NewTemperatureReadingRepository(pool)
	alertRepo := postgres.NewStockAlertRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	articleUC := usecase.NewArticleUseCase(articleRepo, supplierRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	linkUC := usecase.NewArticleSupplierUseCase(linkRepo, articleRepo, supplierRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, articleRepo, supplierRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, lotRepo, warehouseRepo)
	movementUC := movement.NewUseCase(txRunner, movementRepo, lotRepo, warehouseRepo)
	sensorUC := usecase.NewSensorUseCase(sensorRepo, warehouseRepo)
	temperatureUC := usecase.NewTemperatureUseCase(readingRepo, sensorRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo, stockRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El archivo lo genera
	// swag a partir de las anotaciones; si no se generó, se arranca sin UI
	// (el middleware entra en pánico con el archivo ausente).
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "GeStock API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticleUC:         articleUC,
		SupplierUC:        supplierUC,
		ArticleSupplierUC: linkUC,
		LotUC:             lotUC,
		WarehouseUC:       warehouseUC,
		StockUC:           stockUC,
		MovementUC:        movementUC,
		SensorUC:          sensorUC,
		TemperatureUC:     temperatureUC,
		AlertUC:           alertUC,
		UserUC:            userUC,
		AuthUC:            authUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
