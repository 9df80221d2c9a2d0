package connector

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/dns-sync/internal/application/reconcile"
	"github.com/jhoicas/dns-sync/internal/domain"
	"github.com/jhoicas/dns-sync/internal/infrastructure/dns"
	"github.com/jhoicas/dns-sync/internal/infrastructure/mysql"
	"github.com/jhoicas/dns-sync/internal/infrastructure/postgres"
	"github.com/jhoicas/dns-sync/pkg/config"
)

var _ reconcile.Connector = (*Connector)(nil)

// Connector abre las conexiones de la corrida según la configuración: SQL Server para el DNS,
// MySQL o PostgreSQL para cada destino.
type Connector struct {
	cfg config.Config
}

// New construye el conector con una copia de la configuración.
func New(cfg config.Config) *Connector {
	return &Connector{cfg: cfg}
}

// OpenSource conecta al DNS.
func (c *Connector) OpenSource(ctx context.Context) (reconcile.SourceSession, error) {
	db, err := dns.Open(ctx, c.cfg.DNS)
	if err != nil {
		return nil, err
	}
	return dns.NewReader(db, c.cfg.DNS.AccessoriesView, c.cfg.DNS.MaintenancesView), nil
}

// OpenStock conecta a la base de stock (accesorios).
func (c *Connector) OpenStock(ctx context.Context) (reconcile.StockSession, error) {
	cfg := c.cfg.Stock
	switch cfg.Driver {
	case config.DriverMySQL:
		db, err := mysql.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &stockSession{AccessoryStockRepo: mysql.NewAccessoryStockRepository(db, cfg.Table), close: db.Close}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &pgStockSession{AccessoryStockRepo: postgres.NewAccessoryStockRepository(pool, cfg.Table), pool: pool}, nil
	}
	return nil, fmt.Errorf("%w: driver de stock %q", domain.ErrInvalidConfig, cfg.Driver)
}

// OpenStore conecta a la base de la tienda (mantenimientos).
func (c *Connector) OpenStore(ctx context.Context) (reconcile.StoreSession, error) {
	cfg := c.cfg.Store
	switch cfg.Driver {
	case config.DriverMySQL:
		db, err := mysql.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &storeSession{MaintenanceStoreRepo: mysql.NewMaintenanceStoreRepository(db, cfg.Table), close: db.Close}, nil
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &pgStoreSession{MaintenanceStoreRepo: postgres.NewMaintenanceStoreRepository(pool, cfg.Table), pool: pool}, nil
	}
	return nil, fmt.Errorf("%w: driver de la tienda %q", domain.ErrInvalidConfig, cfg.Driver)
}

type stockSession struct {
	*mysql.AccessoryStockRepo
	close func() error
}

func (s *stockSession) Close() error { return s.close() }

type storeSession struct {
	*mysql.MaintenanceStoreRepo
	close func() error
}

func (s *storeSession) Close() error { return s.close() }

type pgStockSession struct {
	*postgres.AccessoryStockRepo
	pool *pgxpool.Pool
}

func (s *pgStockSession) Close() error {
	s.pool.Close()
	return nil
}

type pgStoreSession struct {
	*postgres.MaintenanceStoreRepo
	pool *pgxpool.Pool
}

func (s *pgStoreSession) Close() error {
	s.pool.Close()
	return nil
}
