package repository

import (
	"context"

	"github.com/jhoicas/dns-sync/internal/domain/entity"
)

// MaintenanceSourceRepository lee las filas crudas de planes de mantenimiento del DNS (solo lectura).
type MaintenanceSourceRepository interface {
	ListMaintenanceRows(ctx context.Context) ([]entity.MaintenanceRow, error)
}

// MaintenanceStoreRepository define el puerto hacia la tabla de mantenimientos de la tienda.
// GetByIDDNS devuelve (nil, nil) si no hay fila con ese id_dns.
type MaintenanceStoreRepository interface {
	GetByIDDNS(ctx context.Context, idDNS int64) (*entity.MaintenanceStore, error)
	Update(ctx context.Context, m *entity.MaintenanceDNS) error
	Create(ctx context.Context, m *entity.MaintenanceDNS) error
}
