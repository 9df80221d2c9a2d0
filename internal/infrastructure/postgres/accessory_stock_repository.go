package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
)

var _ repository.AccessoryStockRepository = (*AccessoryStockRepo)(nil)

// AccessoryStockRepo implementación de AccessoryStockRepository sobre PostgreSQL.
type AccessoryStockRepo struct {
	q     Querier
	table string
}

// NewAccessoryStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewAccessoryStockRepository(q Querier, table string) *AccessoryStockRepo {
	return &AccessoryStockRepo{q: q, table: table}
}

// GetBySKU obtiene el producto por sku; (nil, nil) si no existe.
func (r *AccessoryStockRepo) GetBySKU(ctx context.Context, sku string) (*entity.AccessoryStock, error) {
	query := `SELECT product_id, sku, stock_quantity FROM ` + r.table + ` WHERE sku = $1`
	var s entity.AccessoryStock
	err := r.q.QueryRow(ctx, query, sku).Scan(&s.ProductID, &s.SKU, &s.StockQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock por sku: %w", err)
	}
	return &s, nil
}

// UpdateStockQuantity reemplaza la cantidad en stock del sku.
func (r *AccessoryStockRepo) UpdateStockQuantity(ctx context.Context, sku string, quantity int64) error {
	query := `UPDATE ` + r.table + ` SET stock_quantity = $1 WHERE sku = $2`
	if _, err := r.q.Exec(ctx, query, quantity, sku); err != nil {
		return fmt.Errorf("update stock_quantity: %w", err)
	}
	return nil
}
