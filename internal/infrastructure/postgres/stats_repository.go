package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para estadísticas y resúmenes del
// inventario. Siempre sobre el pool: no participa en transacciones.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// General estadísticas globales en una sola pasada.
// COALESCE devuelve cero con inventario vacío (SUM de cero filas es NULL).
func (r *StatsRepo) General() (*entity.InventoryStats, error) {
	const query = `
	SELECT
	    COUNT(*)                                   AS total_products,
	    COALESCE(SUM(quantity), 0)                 AS total_units,
	    COUNT(DISTINCT fabric_type)                AS fabric_types,
	    COUNT(DISTINCT size)                       AS sizes,
	    COUNT(*) FILTER (WHERE quantity = 0)       AS out_of_stock
	FROM products`

	var s entity.InventoryStats
	err := r.pool.QueryRow(context.Background(), query).Scan(
		&s.TotalProducts, &s.TotalUnits, &s.FabricTypeCount, &s.SizeCount, &s.OutOfStock,
	)
	if err != nil {
		return nil, fmt.Errorf("stats.General: %w", err)
	}
	return &s, nil
}

// ByFabricType unidades totales por tipo de tela, mayor total primero.
func (r *StatsRepo) ByFabricType() ([]entity.FabricTypeSummary, error) {
	const query = `
	SELECT fabric_type, SUM(quantity) AS total
	FROM products
	GROUP BY fabric_type
	ORDER BY total DESC`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stats.ByFabricType: %w", err)
	}
	defer rows.Close()

	var results []entity.FabricTypeSummary
	for rows.Next() {
		var row entity.FabricTypeSummary
		if err := rows.Scan(&row.FabricType, &row.TotalUnits); err != nil {
			return nil, fmt.Errorf("stats.ByFabricType scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// BySize unidades totales por talla, orden lexicográfico de talla.
func (r *StatsRepo) BySize() ([]entity.SizeSummary, error) {
	const query = `
	SELECT size, SUM(quantity) AS total
	FROM products
	GROUP BY size
	ORDER BY size`

	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stats.BySize: %w", err)
	}
	defer rows.Close()

	var results []entity.SizeSummary
	for rows.Next() {
		var row entity.SizeSummary
		if err := rows.Scan(&row.Size, &row.TotalUnits); err != nil {
			return nil, fmt.Errorf("stats.BySize scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
