package repository

import "github.com/mvalencia/inventario-textil/internal/domain/entity"

// StatsRepository consultas de solo lectura sobre el estado actual del
// inventario. Sin vistas materializadas: cada llamada recalcula desde la
// tabla de productos (escala de inventario, no de big data).
type StatsRepository interface {
	General() (*entity.InventoryStats, error)
	// ByFabricType agrupa unidades por tipo de tela, ordenado por total descendente.
	ByFabricType() ([]entity.FabricTypeSummary, error)
	// BySize agrupa unidades por talla, ordenado por talla ascendente.
	BySize() ([]entity.SizeSummary, error)
}
