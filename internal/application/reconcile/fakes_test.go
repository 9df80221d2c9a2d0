package reconcile_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dns-sync/internal/application/reconcile"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de reconcile
// ──────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("boom")

// events registra el orden de apertura/cierre y de cada operación contra los fakes.
type events struct {
	log []string
}

func (e *events) add(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

type fakeSource struct {
	ev              *events
	accessories     []entity.AccessoryRow
	maintenances    []entity.MaintenanceRow
	accessoriesErr  error
	maintenancesErr error
	closed          int
}

func (s *fakeSource) ListAccessoryRows(context.Context) ([]entity.AccessoryRow, error) {
	s.ev.add("source:accessories")
	return s.accessories, s.accessoriesErr
}

func (s *fakeSource) ListMaintenanceRows(context.Context) ([]entity.MaintenanceRow, error) {
	s.ev.add("source:maintenances")
	return s.maintenances, s.maintenancesErr
}

func (s *fakeSource) Close() error {
	s.ev.add("source:close")
	s.closed++
	return nil
}

type fakeStock struct {
	ev        *events
	quantity  map[string]int64
	getErr    map[string]error
	updateErr map[string]error
	closed    int
}

func newFakeStock(ev *events, quantities map[string]int64) *fakeStock {
	return &fakeStock{ev: ev, quantity: quantities, getErr: map[string]error{}, updateErr: map[string]error{}}
}

func (s *fakeStock) GetBySKU(_ context.Context, sku string) (*entity.AccessoryStock, error) {
	s.ev.add("stock:get:%s", sku)
	if err := s.getErr[sku]; err != nil {
		return nil, err
	}
	q, ok := s.quantity[sku]
	if !ok {
		return nil, nil
	}
	return &entity.AccessoryStock{ProductID: 1, SKU: sku, StockQuantity: decimal.NewNullDecimal(decimal.NewFromInt(q))}, nil
}

func (s *fakeStock) UpdateStockQuantity(_ context.Context, sku string, quantity int64) error {
	s.ev.add("stock:update:%s=%d", sku, quantity)
	if err := s.updateErr[sku]; err != nil {
		return err
	}
	s.quantity[sku] = quantity
	return nil
}

func (s *fakeStock) Close() error {
	s.ev.add("stock:close")
	s.closed++
	return nil
}

type fakeStore struct {
	ev       *events
	rows     map[int64]entity.MaintenanceDNS
	writeErr map[int64]error
	getErr   map[int64]error
	inserts  int
	updates  int
	closed   int
}

func newFakeStore(ev *events) *fakeStore {
	return &fakeStore{ev: ev, rows: map[int64]entity.MaintenanceDNS{}, writeErr: map[int64]error{}, getErr: map[int64]error{}}
}

func (s *fakeStore) GetByIDDNS(_ context.Context, id int64) (*entity.MaintenanceStore, error) {
	s.ev.add("store:get:%d", id)
	if err := s.getErr[id]; err != nil {
		return nil, err
	}
	m, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &entity.MaintenanceStore{IDDNS: id, ID: id * 10, Descripcion: m.Descripcion}, nil
}

func (s *fakeStore) Update(_ context.Context, m *entity.MaintenanceDNS) error {
	s.ev.add("store:update:%d", m.ID)
	if err := s.writeErr[m.ID]; err != nil {
		return err
	}
	s.updates++
	s.rows[m.ID] = *m
	return nil
}

func (s *fakeStore) Create(_ context.Context, m *entity.MaintenanceDNS) error {
	s.ev.add("store:insert:%d", m.ID)
	if err := s.writeErr[m.ID]; err != nil {
		return err
	}
	s.inserts++
	s.rows[m.ID] = *m
	return nil
}

func (s *fakeStore) Close() error {
	s.ev.add("store:close")
	s.closed++
	return nil
}

type fakeConnector struct {
	ev        *events
	source    *fakeSource
	stock     *fakeStock
	store     *fakeStore
	sourceErr error
	stockErr  error
	storeErr  error
}

func newFakeConnector() *fakeConnector {
	ev := &events{}
	return &fakeConnector{
		ev:     ev,
		source: &fakeSource{ev: ev},
		stock:  newFakeStock(ev, map[string]int64{}),
		store:  newFakeStore(ev),
	}
}

func (c *fakeConnector) OpenSource(context.Context) (reconcile.SourceSession, error) {
	c.ev.add("source:open")
	if c.sourceErr != nil {
		return nil, c.sourceErr
	}
	return c.source, nil
}

func (c *fakeConnector) OpenStock(context.Context) (reconcile.StockSession, error) {
	c.ev.add("stock:open")
	if c.stockErr != nil {
		return nil, c.stockErr
	}
	return c.stock, nil
}

func (c *fakeConnector) OpenStore(context.Context) (reconcile.StoreSession, error) {
	c.ev.add("store:open")
	if c.storeErr != nil {
		return nil, c.storeErr
	}
	return c.store, nil
}

// bufferLogger logger JSON sobre un buffer para inspeccionar los mensajes.
func bufferLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(logger.Config{Env: "production", Level: "debug", Output: &buf}), &buf
}

func ptr[T any](v T) *T { return &v }
