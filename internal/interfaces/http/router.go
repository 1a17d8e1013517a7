package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-stock-api/internal/application/auth"
	"github.com/jhoicas/restaurante-stock-api/internal/application/catalog"
	"github.com/jhoicas/restaurante-stock-api/internal/application/ledger"
	"github.com/jhoicas/restaurante-stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC        *ledger.LedgerUseCase
	TransferUC      *ledger.TransferUseCase
	PurchaseUC      *ledger.PurchaseUseCase
	ConsumptionUC   *ledger.ConsumptionUseCase
	ThresholdUC     *ledger.ThresholdUseCase
	ReplenishmentUC *ledger.ReplenishmentUseCase
	CatalogUC       *catalog.CatalogUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/password", authHandler.ChangePassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reset de contraseña (solo admin)
	protected.Post("/auth/reset-password", RequireRole(entity.RoleAdmin), authHandler.ResetPassword)

	// Libro de stock
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC, deps.ReplenishmentUC)
	stock.Post("/credit", stockHandler.Credit)
	stock.Post("/debit", stockHandler.Debit)
	stock.Get("/balance", stockHandler.GetBalance)
	stock.Get("/report", stockHandler.Report)
	stock.Get("/report-by-type", stockHandler.ReportByType)
	stock.Get("/replenishment-list", stockHandler.ReplenishmentList)

	// Traslados
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/report", transferHandler.Report)
	transfers.Get("/history", transferHandler.History)
	transfers.Get("/:id", transferHandler.GetByGroup)

	// Compras (alta restringida a admin y manager)
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.History)
	purchases.Get("/by-date", purchaseHandler.ByDate)
	purchases.Get("/by-vendor", purchaseHandler.ByVendor)
	purchases.Get("/years", purchaseHandler.Years)

	// Ventas, preparaciones y consumo
	salesHandler := NewSalesHandler(deps.ConsumptionUC)
	protected.Post("/sales", salesHandler.RecordSale)
	protected.Post("/preparations", salesHandler.RecordPreparation)
	protected.Post("/preparations/transfer", salesHandler.TransferPrepared)
	protected.Get("/consumption/report", salesHandler.DailyReport)

	// Umbrales mínimos (escritura restringida a admin y manager)
	thresholds := protected.Group("/thresholds")
	thresholdHandler := NewThresholdHandler(deps.ThresholdUC)
	thresholds.Put("/", RequireRole(entity.RoleAdmin, entity.RoleManager), thresholdHandler.Update)
	thresholds.Get("/", thresholdHandler.List)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	materials := protected.Group("/materials")
	materials.Get("/", catalogHandler.ListMaterials)
	materials.Get("/categories", catalogHandler.MaterialCategories)
	materials.Post("/", RequireRole(entity.RoleAdmin, entity.RoleManager), catalogHandler.CreateMaterial)
	materials.Delete("/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeleteMaterial)

	dishes := protected.Group("/dishes")
	dishes.Get("/", catalogHandler.ListDishes)
	dishes.Get("/:id/recipe", catalogHandler.DishRecipe)

	protected.Get("/vendors", catalogHandler.ListVendors)
	protected.Get("/locations", catalogHandler.ListLocations)
}
