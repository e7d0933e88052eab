package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/application/inventory"
	"github.com/mvalencia/inventario-textil/internal/domain"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
)

// DefaultLowStockThreshold umbral de alerta cuando el caller no indica uno.
const DefaultLowStockThreshold = 10

// ProductUseCase casos de uso CRUD y de consulta para productos. La cantidad
// se maneja vía el motor de stock; aquí solo se escribe en el alta (con su
// movimiento ADD) y nunca en Update.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create valida, normaliza y persiste un producto nuevo junto con su
// movimiento ADD, en una transacción. La validación falla antes de escribir
// nada: sin fila de producto ni de historial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	fabricType := entity.NormalizeFabricType(in.FabricType)
	size := entity.NormalizeSize(in.Size)
	if name == "" || fabricType == "" || size == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = entity.DefaultColor
	}

	now := time.Now()
	product := &entity.Product{
		Name:       name,
		FabricType: fabricType,
		Size:       size,
		Quantity:   in.Quantity,
		Color:      color,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		// Movimiento de alta: before == after == cantidad inicial, delta con
		// la cantidad dada de alta (la cadena del historial arranca aquí).
		mov := &entity.StockMovement{
			ProductID:      product.ID,
			Kind:           entity.MovementKindADD,
			Delta:          product.Quantity,
			QuantityBefore: product.Quantity,
			QuantityAfter:  product.Quantity,
			Actor:          entity.DefaultActor,
			CreatedAt:      now,
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista todos los productos ordenados por la columna pedida (la lista
// blanca está en el repositorio; valores inválidos caen en id).
func (uc *ProductUseCase) List(orderBy string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(orderBy)
	if err != nil {
		return nil, err
	}
	out := dto.FromProducts(list)
	return &out, nil
}

// Update actualiza campos descriptivos. Campos omitidos o en blanco
// conservan el valor anterior; quantity nunca se toca por este camino.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.FabricType != nil && strings.TrimSpace(*in.FabricType) != "" {
		product.FabricType = entity.NormalizeFabricType(*in.FabricType)
	}
	if in.Size != nil && strings.TrimSpace(*in.Size) != "" {
		product.Size = entity.NormalizeSize(*in.Size)
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		product.Color = strings.TrimSpace(*in.Color)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Delete elimina el producto y, en la misma transacción, todos sus
// movimientos del historial (sin registros huérfanos).
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.DeleteByProduct(id); err != nil {
			return err
		}
		return productRepo.Delete(id)
	})
}

// Search búsqueda combinada (AND), case-insensitive en tela y talla por
// normalización. El orden lo decide el repositorio según los filtros
// activos (solo tela agrupa por talla y viceversa).
func (uc *ProductUseCase) Search(in dto.SearchProductsRequest) (*dto.ProductListResponse, error) {
	filter := repository.ProductFilter{
		FabricType:  entity.NormalizeFabricType(in.FabricType),
		Size:        entity.NormalizeSize(in.Size),
		MinQuantity: in.MinQuantity,
	}
	list, err := uc.repo.Search(filter)
	if err != nil {
		return nil, err
	}
	out := dto.FromProducts(list)
	return &out, nil
}

// LowStock productos con cantidad <= umbral, los más bajos primero.
func (uc *ProductUseCase) LowStock(threshold int64) (*dto.ProductListResponse, error) {
	list, err := uc.repo.LowStock(threshold)
	if err != nil {
		return nil, err
	}
	out := dto.FromProducts(list)
	return &out, nil
}
