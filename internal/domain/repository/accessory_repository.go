package repository

import (
	"context"

	"github.com/jhoicas/dns-sync/internal/domain/entity"
)

// AccessorySourceRepository lee las filas crudas de accesorios del DNS (solo lectura).
type AccessorySourceRepository interface {
	ListAccessoryRows(ctx context.Context) ([]entity.AccessoryRow, error)
}

// AccessoryStockRepository define el puerto hacia la tabla de stock de la tienda.
// GetBySKU devuelve (nil, nil) si el sku no existe.
type AccessoryStockRepository interface {
	GetBySKU(ctx context.Context, sku string) (*entity.AccessoryStock, error)
	UpdateStockQuantity(ctx context.Context, sku string, quantity int64) error
}
