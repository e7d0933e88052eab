package entity

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultColor valor para productos sin color declarado.
const DefaultColor = "N/A"

// Product representa una prenda o pieza textil del inventario.
// Quantity se modifica únicamente vía el motor de stock: cada cambio
// deja exactamente un StockMovement en la misma transacción.
type Product struct {
	ID         int64
	Name       string
	FabricType string // almacenado en minúsculas; búsqueda case-insensitive por construcción
	Size       string // almacenado en mayúsculas
	Quantity   int64  // nunca negativo
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderColumns columnas válidas para ordenar listados de productos.
// Cualquier otro valor cae en "id" (nunca error).
var OrderColumns = map[string]bool{
	"id":          true,
	"name":        true,
	"fabric_type": true,
	"size":        true,
	"quantity":    true,
}

// NormalizeFabricType pasa el tipo de tela a minúsculas respetando tildes
// ("Algodón" -> "algodón", "Poliéster" -> "poliéster").
func NormalizeFabricType(s string) string {
	return cases.Lower(language.Spanish).String(strings.TrimSpace(s))
}

// NormalizeSize pasa la talla a mayúsculas ("m" -> "M", "xl" -> "XL").
func NormalizeSize(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
