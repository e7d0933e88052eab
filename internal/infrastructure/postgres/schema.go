package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas e índices si no existen. Idempotente; se llama
// en el arranque. El CHECK de quantity respalda en la base la invariante de
// no-negatividad que el motor de stock ya valida.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL,
			fabric_type TEXT NOT NULL,
			size        TEXT NOT NULL,
			quantity    BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			color       TEXT NOT NULL DEFAULT 'N/A',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id              BIGSERIAL PRIMARY KEY,
			product_id      BIGINT NOT NULL REFERENCES products(id),
			kind            TEXT NOT NULL,
			delta           BIGINT NOT NULL,
			quantity_before BIGINT NOT NULL,
			quantity_after  BIGINT NOT NULL,
			actor           TEXT NOT NULL DEFAULT 'system',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// Índices para mantener la búsqueda combinada sub-lineal
		`CREATE INDEX IF NOT EXISTS idx_products_fabric_type ON products(fabric_type)`,
		`CREATE INDEX IF NOT EXISTS idx_products_size ON products(size)`,
		`CREATE INDEX IF NOT EXISTS idx_products_fabric_size ON products(fabric_type, size)`,
		`CREATE INDEX IF NOT EXISTS idx_movements_product ON stock_movements(product_id)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
