package dto

import (
	"time"

	"github.com/mvalencia/inventario-textil/internal/domain/entity"
)

// StockDeltaRequest body para POST /api/inventory/increase y /decrease.
type StockDeltaRequest struct {
	ProductID int64  `json:"product_id"`
	Amount    int64  `json:"amount"`
	Actor     string `json:"actor,omitempty"`
}

// StockAdjustRequest body para POST /api/inventory/adjust: fija la cantidad
// sin expresarla como delta.
type StockAdjustRequest struct {
	ProductID   int64  `json:"product_id"`
	NewQuantity int64  `json:"new_quantity"`
	Actor       string `json:"actor,omitempty"`
}

// MovementResponse una entrada del historial de movimientos.
type MovementResponse struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	ProductName    string    `json:"product_name,omitempty"`
	Kind           string    `json:"kind"`
	Delta          int64     `json:"delta"`
	QuantityBefore int64     `json:"quantity_before"`
	QuantityAfter  int64     `json:"quantity_after"`
	Actor          string    `json:"actor"`
	CreatedAt      time.Time `json:"created_at"`
}

// MovementListResponse historial, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// FromMovements mapea movimientos a la respuesta de historial.
func FromMovements(list []*entity.StockMovement) MovementListResponse {
	items := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, MovementResponse{
			ID:             m.ID,
			ProductID:      m.ProductID,
			ProductName:    m.ProductName,
			Kind:           m.Kind,
			Delta:          m.Delta,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			Actor:          m.Actor,
			CreatedAt:      m.CreatedAt,
		})
	}
	return MovementListResponse{Items: items, Total: len(items)}
}
