package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mvalencia/inventario-textil/internal/domain/entity"
	"github.com/mvalencia/inventario-textil/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, fabric_type, size, quantity, color, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, fabric_type, size, quantity, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.FabricType, product.Size, product.Quantity,
		product.Color, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción: serializa mutaciones concurrentes
// sobre el mismo producto sin bloquear las de otros productos.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// List lista todos los productos ordenados por la columna indicada.
// orderBy fuera de la lista blanca cae en "id" (nunca error).
func (r *ProductRepo) List(orderBy string) ([]*entity.Product, error) {
	if !entity.OrderColumns[orderBy] {
		orderBy = "id"
	}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY ` + orderBy
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza los campos descriptivos. No toca quantity (eso va solo
// por UpdateQuantity, vía el motor de stock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, fabric_type = $3, size = $4, color = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.FabricType, product.Size, product.Color, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity fija la cantidad de un producto. Llamado por el motor de
// stock dentro de la misma transacción que inserta el movimiento.
func (r *ProductRepo) UpdateQuantity(id int64, quantity int64, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = $3 WHERE id = $1`,
		id, quantity, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. La cascada de movimientos la orquesta
// el caso de uso dentro de una transacción (DeleteByProduct primero).
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Search búsqueda combinada (AND). Los valores llegan ya normalizados, así
// que la comparación directa contra las columnas normalizadas es
// case-insensitive por construcción. El orden depende de los filtros
// activos (ver searchOrder).
func (r *ProductRepo) Search(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.FabricType != "" {
		query += fmt.Sprintf(" AND fabric_type = $%d", pos)
		args = append(args, filter.FabricType)
		pos++
	}
	if filter.Size != "" {
		query += fmt.Sprintf(" AND size = $%d", pos)
		args = append(args, filter.Size)
		pos++
	}
	if filter.MinQuantity != nil {
		query += fmt.Sprintf(" AND quantity >= $%d", pos)
		args = append(args, *filter.MinQuantity)
		pos++
	}
	query += " ORDER BY " + searchOrder(filter)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return r.scanAll(rows)
}

// searchOrder elige el ORDER BY según los filtros activos: buscar solo por
// tela agrupa por talla, buscar solo por talla agrupa por tela; cualquier
// otra combinación ordena por nombre.
func searchOrder(filter repository.ProductFilter) string {
	switch {
	case filter.FabricType != "" && filter.Size == "":
		return "size, name"
	case filter.Size != "" && filter.FabricType == "":
		return "fabric_type, name"
	}
	return "name"
}

// LowStock productos con cantidad <= umbral, ordenados por cantidad ascendente.
func (r *ProductRepo) LowStock(threshold int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity <= $1 ORDER BY quantity ASC`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	return r.scanAll(rows)
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.FabricType, &p.Size, &p.Quantity, &p.Color, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) scanAll(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.FabricType, &p.Size, &p.Quantity, &p.Color, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
