package inventory

import (
	"context"
	"time"

	"github.com/mvalencia/inventario-textil/internal/application/dto"
	"github.com/mvalencia/inventario-textil/internal/domain"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
)

// Límites del historial de movimientos.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 1000
)

// StockUseCase es el único camino por el que cambia la cantidad de un
// producto. Cada mutación bloquea la fila (SELECT FOR UPDATE), actualiza la
// cantidad y agrega exactamente un movimiento al historial, todo en una
// transacción: Commit o Rollback completo, nunca efecto parcial.
//
// Increase no valida el signo de amount (el original tampoco lo hacía;
// los callers de UI validan positividad); solo rechaza resultados negativos.
// Decrease sí verifica disponibilidad antes de tocar nada.
type StockUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
}

// NewStockUseCase construye el motor de stock.
func NewStockUseCase(txRunner TxRunner, movRepo repository.MovementRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, movRepo: movRepo}
}

// SetQuantity fija la cantidad de un producto registrando un movimiento del
// tipo indicado. delta = nueva − actual.
func (uc *StockUseCase) SetQuantity(ctx context.Context, productID, newQuantity int64, kind, actor string) error {
	if newQuantity < 0 || !entity.ValidMovementKind(kind) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		return applyQuantityChange(productRepo, movRepo, product, newQuantity, kind, actor)
	})
}

// Increase suma amount a la cantidad actual (kind INCREASE).
func (uc *StockUseCase) Increase(ctx context.Context, productID, amount int64, actor string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		newQuantity := product.Quantity + amount
		if newQuantity < 0 {
			return domain.ErrInvalidInput
		}
		return applyQuantityChange(productRepo, movRepo, product, newQuantity, entity.MovementKindINCREASE, actor)
	})
}

// Decrease resta amount de la cantidad actual (kind DECREASE). Si no hay
// stock suficiente devuelve ErrInsufficientStock sin modificar nada.
func (uc *StockUseCase) Decrease(ctx context.Context, productID, amount int64, actor string) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Quantity < amount {
			return domain.ErrInsufficientStock
		}
		return applyQuantityChange(productRepo, movRepo, product, product.Quantity-amount, entity.MovementKindDECREASE, actor)
	})
}

// Adjust fija la cantidad directamente (kind ADJUST), para correcciones que
// no se expresan como entrada o salida.
func (uc *StockUseCase) Adjust(ctx context.Context, productID, newQuantity int64, actor string) error {
	return uc.SetQuantity(ctx, productID, newQuantity, entity.MovementKindADJUST, actor)
}

// History devuelve el historial de movimientos, más recientes primero.
// productID nil consulta todo el inventario. limit <= 0 usa el valor por
// defecto; se acota a MaxHistoryLimit para evitar escaneos sin límite.
func (uc *StockUseCase) History(productID *int64, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	var (
		list []*entity.StockMovement
		err  error
	)
	if productID != nil {
		list, err = uc.movRepo.ListByProduct(*productID, limit)
	} else {
		list, err = uc.movRepo.ListRecent(limit)
	}
	if err != nil {
		return nil, err
	}
	out := dto.FromMovements(list)
	return &out, nil
}

// applyQuantityChange escribe la nueva cantidad y su movimiento pareado.
// Se llama con la fila ya bloqueada, dentro de la transacción.
func applyQuantityChange(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	product *entity.Product,
	newQuantity int64,
	kind, actor string,
) error {
	now := time.Now()
	if err := productRepo.UpdateQuantity(product.ID, newQuantity, now); err != nil {
		return err
	}
	if actor == "" {
		actor = entity.DefaultActor
	}
	mov := &entity.StockMovement{
		ProductID:      product.ID,
		Kind:           kind,
		Delta:          newQuantity - product.Quantity,
		QuantityBefore: product.Quantity,
		QuantityAfter:  newQuantity,
		Actor:          actor,
		CreatedAt:      now,
	}
	return movRepo.Create(mov)
}
