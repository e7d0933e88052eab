package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindADD      = "ADD"      // alta de producto (cantidad inicial)
	MovementKindINCREASE = "INCREASE" // entrada de mercancía
	MovementKindDECREASE = "DECREASE" // salida (venta)
	MovementKindADJUST   = "ADJUST"   // ajuste directo de cantidad
)

// DefaultActor actor registrado cuando el caller no identifica quién mueve el stock.
const DefaultActor = "system"

// ValidMovementKind indica si kind es uno de los tipos conocidos.
func ValidMovementKind(kind string) bool {
	switch kind {
	case MovementKindADD, MovementKindINCREASE, MovementKindDECREASE, MovementKindADJUST:
		return true
	}
	return false
}

// StockMovement es un registro inmutable del historial de movimientos:
// una fila por cada cambio de cantidad, escrita en la misma transacción
// que el cambio. Nunca se actualiza; solo se borra en cascada al eliminar
// el producto.
type StockMovement struct {
	ID             int64
	ProductID      int64
	Kind           string
	Delta          int64 // con signo; en ADD es la cantidad inicial, en el resto after - before
	QuantityBefore int64
	QuantityAfter  int64
	Actor          string
	CreatedAt      time.Time

	// ProductName se llena solo en consultas de historial (JOIN con products);
	// no es columna de la tabla de movimientos.
	ProductName string
}
