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
	"github.com/jhoicas/restaurante-stock-api/internal/application/auth"
	"github.com/jhoicas/restaurante-stock-api/internal/application/catalog"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurante-stock-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-stock-api/pkg/clock"
	"github.com/jhoicas/restaurante-stock-api/pkg/config"
	"github.com/jhoicas/restaurante-stock-api/pkg/logger"
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

	clk, err := clock.New(cfg.App.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de negocio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRecordRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	thresholdRepo := postgres.NewThresholdRepository(pool)
	materialRepo := postgres.NewRawMaterialRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)
	recipeRepo := postgres.NewDishRecipeRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	expander := ledger.NewRecipeExpander(recipeRepo)
	ledgerUC := ledger.NewLedgerUseCase(txRunner, stockRepo, materialRepo)
	transferUC := ledger.NewTransferUseCase(txRunner, transferRepo, materialRepo, clk)
	purchaseUC := ledger.NewPurchaseUseCase(txRunner, purchaseRepo, materialRepo, vendorRepo, clk)
	consumptionUC := ledger.NewConsumptionUseCase(txRunner, expander, consumptionRepo, dishRepo, clk)
	thresholdUC := ledger.NewThresholdUseCase(txRunner, thresholdRepo, clk)
	replenishmentUC := ledger.NewReplenishmentUseCase(stockRepo)
	catalogUC := catalog.NewCatalogUseCase(materialRepo, dishRepo, recipeRepo, vendorRepo, locationRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Restaurante Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:        ledgerUC,
		TransferUC:      transferUC,
		PurchaseUC:      purchaseUC,
		ConsumptionUC:   consumptionUC,
		ThresholdUC:     thresholdUC,
		ReplenishmentUC: replenishmentUC,
		CatalogUC:       catalogUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
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
