package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
)

var _ repository.AccessoryStockRepository = (*AccessoryStockRepo)(nil)

// AccessoryStockRepo implementación de AccessoryStockRepository sobre MySQL
// (tabla de lookup de productos de WooCommerce).
type AccessoryStockRepo struct {
	db    *sql.DB
	table string
}

// NewAccessoryStockRepository construye el adaptador sobre la tabla indicada.
func NewAccessoryStockRepository(db *sql.DB, table string) *AccessoryStockRepo {
	return &AccessoryStockRepo{db: db, table: table}
}

// GetBySKU obtiene el producto por sku; (nil, nil) si no existe.
func (r *AccessoryStockRepo) GetBySKU(ctx context.Context, sku string) (*entity.AccessoryStock, error) {
	query := `SELECT product_id, sku, stock_quantity FROM ` + r.table + ` WHERE sku = ?`
	var s entity.AccessoryStock
	err := r.db.QueryRowContext(ctx, query, sku).Scan(&s.ProductID, &s.SKU, &s.StockQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock por sku: %w", err)
	}
	return &s, nil
}

// UpdateStockQuantity reemplaza la cantidad en stock del sku.
func (r *AccessoryStockRepo) UpdateStockQuantity(ctx context.Context, sku string, quantity int64) error {
	query := `UPDATE ` + r.table + ` SET stock_quantity = ? WHERE sku = ?`
	if _, err := r.db.ExecContext(ctx, query, quantity, sku); err != nil {
		return fmt.Errorf("update stock_quantity: %w", err)
	}
	return nil
}
