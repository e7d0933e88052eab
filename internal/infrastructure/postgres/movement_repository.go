package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mvalencia/inventario-textil/internal/domain"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del historial de movimientos sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento y asigna el ID generado. Las filas jamás se
// modifican después; el historial es append-only.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	if movement.Actor == "" {
		movement.Actor = entity.DefaultActor
	}
	query := `
		INSERT INTO stock_movements (product_id, kind, delta, quantity_before, quantity_after, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Kind, movement.Delta,
		movement.QuantityBefore, movement.QuantityAfter, movement.Actor, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// ListByProduct movimientos de un producto, más recientes primero, con el
// nombre del producto resuelto por JOIN.
func (r *MovementRepo) ListByProduct(productID int64, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.kind, m.delta, m.quantity_before, m.quantity_after, m.actor, m.created_at, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.product_id = $1
		ORDER BY m.id DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return r.scanAll(rows)
}

// ListRecent últimos movimientos de todo el inventario, más recientes primero.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.kind, m.delta, m.quantity_before, m.quantity_after, m.actor, m.created_at, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.id DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	return r.scanAll(rows)
}

// DeleteByProduct borra los movimientos de un producto. Solo para la cascada
// al eliminar el producto, dentro de la misma transacción.
func (r *MovementRepo) DeleteByProduct(productID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movements by product: %w", err)
	}
	return nil
}

func (r *MovementRepo) scanAll(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Kind, &m.Delta,
			&m.QuantityBefore, &m.QuantityAfter, &m.Actor, &m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
