package reconcile

import (
	"context"

	"github.com/jhoicas/dns-sync/internal/domain/repository"
)

// SourceSession conexión de solo lectura al DNS, compartida por las dos lecturas de la corrida.
type SourceSession interface {
	repository.AccessorySourceRepository
	repository.MaintenanceSourceRepository
	Close() error
}

// StockSession conexión privada a la base de stock durante la pasada de accesorios.
type StockSession interface {
	repository.AccessoryStockRepository
	Close() error
}

// StoreSession conexión privada a la base de la tienda durante la pasada de mantenimientos.
type StoreSession interface {
	repository.MaintenanceStoreRepository
	Close() error
}

// Connector abre las conexiones de la corrida. Cada destino se abre y cierra una vez por pasada.
type Connector interface {
	OpenSource(ctx context.Context) (SourceSession, error)
	OpenStock(ctx context.Context) (StockSession, error)
	OpenStore(ctx context.Context) (StoreSession, error)
}
