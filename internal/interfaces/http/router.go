package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mvalencia/inventario-textil/internal/application/inventory"
	"github.com/mvalencia/inventario-textil/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	StockUC   *inventory.StockUseCase
	StatsUC   *usecase.StatsUseCase
	BackupUC  *usecase.BackupUseCase
}

// Router registra las rutas de la API: lecturas y escrituras que consumen
// las capas de presentación externas (dashboard, GUI, menú CLI).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products: CRUD + búsqueda + bajo stock
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Inventory: mutaciones de stock + historial
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	invGroup.Post("/increase", inventoryHandler.Increase)
	invGroup.Post("/decrease", inventoryHandler.Decrease)
	invGroup.Post("/adjust", inventoryHandler.Adjust)
	invGroup.Get("/movements", inventoryHandler.History)

	// Stats: agregaciones de solo lectura
	stats := api.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats.Get("/", statsHandler.General)
	stats.Get("/fabric-types", statsHandler.ByFabricType)
	stats.Get("/sizes", statsHandler.BySize)

	// Maintenance: respaldo
	maintenance := api.Group("/maintenance")
	backupHandler := NewBackupHandler(deps.BackupUC)
	maintenance.Post("/backup", backupHandler.Create)
}
