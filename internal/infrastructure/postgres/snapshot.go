package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
)

// Snapshotter exporta el estado durable (productos + historial) a un archivo
// JSON. Lee dentro de una transacción REPEATABLE READ, así el snapshot es una
// foto consistente aunque haya escrituras concurrentes: nunca captura una
// cantidad sin su movimiento pareado.
type Snapshotter struct {
	pool *pgxpool.Pool
}

// NewSnapshotter construye el exportador de respaldos.
func NewSnapshotter(pool *pgxpool.Pool) *Snapshotter {
	return &Snapshotter{pool: pool}
}

// snapshotManifest estructura del archivo de respaldo.
type snapshotManifest struct {
	SnapshotID string             `json:"snapshot_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Products   []snapshotProduct  `json:"products"`
	Movements  []snapshotMovement `json:"movements"`
}

type snapshotProduct struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	FabricType string    `json:"fabric_type"`
	Size       string    `json:"size"`
	Quantity   int64     `json:"quantity"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type snapshotMovement struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	Kind           string    `json:"kind"`
	Delta          int64     `json:"delta"`
	QuantityBefore int64     `json:"quantity_before"`
	QuantityAfter  int64     `json:"quantity_after"`
	Actor          string    `json:"actor"`
	CreatedAt      time.Time `json:"created_at"`
}

// Snapshot escribe el respaldo en destPath y devuelve la ruta escrita.
func (s *Snapshotter) Snapshot(ctx context.Context, destPath string) (string, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return "", fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	products, err := s.readProducts(ctx, tx)
	if err != nil {
		return "", err
	}
	movements, err := s.readMovements(ctx, tx)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("commit snapshot tx: %w", err)
	}

	manifest := snapshotManifest{
		SnapshotID: uuid.New().String(),
		CreatedAt:  time.Now(),
		Products:   products,
		Movements:  movements,
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("crear directorio de respaldo: %w", err)
		}
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializar snapshot: %w", err)
	}
	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir snapshot: %w", err)
	}
	return destPath, nil
}

func (s *Snapshotter) readProducts(ctx context.Context, tx pgx.Tx) ([]snapshotProduct, error) {
	rows, err := tx.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot products: %w", err)
	}
	defer rows.Close()
	// Slices vacíos (no nil) para que el JSON siempre tenga arreglos
	products := []snapshotProduct{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.FabricType, &p.Size, &p.Quantity, &p.Color, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan product: %w", err)
		}
		products = append(products, snapshotProduct{
			ID: p.ID, Name: p.Name, FabricType: p.FabricType, Size: p.Size,
			Quantity: p.Quantity, Color: p.Color, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
		})
	}
	return products, rows.Err()
}

func (s *Snapshotter) readMovements(ctx context.Context, tx pgx.Tx) ([]snapshotMovement, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, product_id, kind, delta, quantity_before, quantity_after, actor, created_at
		FROM stock_movements ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot movements: %w", err)
	}
	defer rows.Close()
	movements := []snapshotMovement{}
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Kind, &m.Delta, &m.QuantityBefore, &m.QuantityAfter, &m.Actor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan movement: %w", err)
		}
		movements = append(movements, snapshotMovement{
			ID: m.ID, ProductID: m.ProductID, Kind: m.Kind, Delta: m.Delta,
			QuantityBefore: m.QuantityBefore, QuantityAfter: m.QuantityAfter,
			Actor: m.Actor, CreatedAt: m.CreatedAt,
		})
	}
	return movements, rows.Err()
}
