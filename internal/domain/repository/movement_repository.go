package repository

import "github.com/mvalencia/inventario-textil/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el historial de
// movimientos. Append-only: ninguna operación modifica filas existentes;
// DeleteByProduct existe solo para la cascada al eliminar un producto y debe
// ejecutarse en la misma transacción que ese delete.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve los movimientos de un producto, más recientes primero.
	ListByProduct(productID int64, limit int) ([]*entity.StockMovement, error)
	// ListRecent devuelve los últimos movimientos de todo el inventario, más recientes primero.
	ListRecent(limit int) ([]*entity.StockMovement, error)
	DeleteByProduct(productID int64) error
}
