package dto

import (
	"time"

	"github.com/mvalencia/inventario-textil/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// Quantity es la cantidad inicial; genera el movimiento ADD del historial.
type CreateProductRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	FabricType string `json:"fabric_type" validate:"required,min=1,max=100"`
	Size       string `json:"size" validate:"required,min=1,max=20"`
	Quantity   int64  `json:"quantity" validate:"min=0"`
	Color      string `json:"color"`
}

// UpdateProductRequest entrada para actualizar un producto. Sin Quantity:
// los cambios de cantidad van solo por el motor de stock. Campos omitidos o
// en blanco conservan el valor anterior.
type UpdateProductRequest struct {
	Name       *string `json:"name"`
	FabricType *string `json:"fabric_type"`
	Size       *string `json:"size"`
	Color      *string `json:"color"`
}

// SearchProductsRequest filtros combinables para búsqueda (query params).
type SearchProductsRequest struct {
	FabricType  string `query:"fabric_type"`
	Size        string `query:"size"`
	MinQuantity *int64 `query:"min_quantity"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	FabricType string    `json:"fabric_type"`
	Size       string    `json:"size"`
	Quantity   int64     `json:"quantity"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductListResponse lista de productos con el total.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// FromProduct mapea la entidad a su respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		FabricType: p.FabricType,
		Size:       p.Size,
		Quantity:   p.Quantity,
		Color:      p.Color,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromProducts mapea una lista de entidades a la respuesta de listado.
func FromProducts(list []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, FromProduct(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}
