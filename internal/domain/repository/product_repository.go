package repository

import (
	"time"

	"github.com/mvalencia/inventario-textil/internal/domain/entity"
)

// ProductFilter filtros combinables (AND) para búsqueda de productos.
// Cadena vacía / nil significa "sin filtro". FabricType y Size se comparan
// contra los valores normalizados almacenados.
type ProductFilter struct {
	FabricType  string
	Size        string
	MinQuantity *int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Quantity no se toca vía Update: solo UpdateQuantity, llamado por el motor
// de stock dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE); usar solo dentro de una tx.
	GetForUpdate(id int64) (*entity.Product, error)
	List(orderBy string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id int64, quantity int64, updatedAt time.Time) error
	Delete(id int64) error
	Search(filter ProductFilter) ([]*entity.Product, error)
	LowStock(threshold int64) ([]*entity.Product, error)
}
