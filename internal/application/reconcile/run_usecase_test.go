package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dns-sync/internal/application/reconcile"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/pkg/logger"
)

func newRunUseCase(conn *fakeConnector, log *logger.Logger) *reconcile.RunUseCase {
	return reconcile.NewRunUseCase(
		conn,
		reconcile.NewAccessoryUseCase(conn, log),
		reconcile.NewMaintenanceUseCase(conn, log),
		log,
	)
}

func TestRun_CorridaCompleta(t *testing.T) {
	conn := newFakeConnector()
	conn.source.accessories = []entity.AccessoryRow{
		{Codigo: "A1", Stock: 2},
		{Codigo: "A1", Stock: 3},
		{Codigo: "B2", Stock: 1},
	}
	conn.source.maintenances = []entity.MaintenanceRow{{IDPlanMantenimientoEnca: 42, Descripcion: ptr("10.000 km")}}
	conn.stock.quantity = map[string]int64{"A1": 0, "B2": 7}

	res := newRunUseCase(conn, logger.Nop()).Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, entity.RunCompleted, res.Status)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, int64(5), conn.stock.quantity["A1"])
	assert.Equal(t, int64(1), conn.stock.quantity["B2"])
	assert.Equal(t, 2, res.Accessories.Total)
	assert.Equal(t, 1, res.Maintenances.Count(entity.OutcomeInserted))

	// Secuencial: el destino de stock se cierra antes de leer mantenimientos y abrir la tienda.
	assert.Equal(t, []string{
		"source:open",
		"source:accessories",
		"stock:open", "stock:get:A1", "stock:update:A1=5", "stock:get:B2", "stock:update:B2=1", "stock:close",
		"source:maintenances",
		"store:open", "store:get:42", "store:insert:42", "store:close",
		"source:close",
	}, conn.ev.log)
}

func TestRun_FalloDeConexionAlDNSAborta(t *testing.T) {
	conn := newFakeConnector()
	conn.sourceErr = errBoom
	log, buf := bufferLogger()

	res := newRunUseCase(conn, log).Run(context.Background())

	assert.Equal(t, entity.RunAborted, res.Status)
	assert.ErrorIs(t, res.Err, errBoom)
	assert.Nil(t, res.Accessories)
	assert.Equal(t, []string{"source:open"}, conn.ev.log)
	assert.Contains(t, buf.String(), "el proceso no se pudo completar")
	assert.Contains(t, buf.String(), res.RunID)
}

func TestRun_FalloLeyendoAccesoriosNoSigueConMantenimientos(t *testing.T) {
	conn := newFakeConnector()
	conn.source.accessoriesErr = errBoom

	res := newRunUseCase(conn, logger.Nop()).Run(context.Background())

	assert.Equal(t, entity.RunAborted, res.Status)
	assert.NotContains(t, conn.ev.log, "source:maintenances")
	assert.NotContains(t, conn.ev.log, "stock:open")
	assert.Equal(t, 1, conn.source.closed)
}

func TestRun_ErroresPorRegistroNoAbortan(t *testing.T) {
	conn := newFakeConnector()
	conn.source.accessories = []entity.AccessoryRow{{Codigo: "A1", Stock: 1}, {Codigo: "ZZZ", Stock: 1}}
	conn.source.maintenances = []entity.MaintenanceRow{{IDPlanMantenimientoEnca: 1}, {IDPlanMantenimientoEnca: 2}}
	conn.stock.quantity["A1"] = 0
	conn.store.writeErr[1] = errBoom

	res := newRunUseCase(conn, logger.Nop()).Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, entity.RunCompletedWithErrors, res.Status)
	assert.Equal(t, 1, res.Accessories.Count(entity.OutcomeNotFound))
	assert.Equal(t, 0, res.Accessories.Failed())
	assert.Equal(t, 1, res.Maintenances.Failed())
	assert.Equal(t, 1, res.Maintenances.Count(entity.OutcomeInserted))
}

func TestRun_SoloNoEncontradosEsCompletado(t *testing.T) {
	conn := newFakeConnector()
	conn.source.accessories = []entity.AccessoryRow{{Codigo: "ZZZ999", Stock: 4}}

	res := newRunUseCase(conn, logger.Nop()).Run(context.Background())

	assert.Equal(t, entity.RunCompleted, res.Status)
	assert.Equal(t, 1, res.Accessories.Count(entity.OutcomeNotFound))
}

func TestRun_TiendaCaidaNoAborta(t *testing.T) {
	conn := newFakeConnector()
	conn.source.accessories = []entity.AccessoryRow{{Codigo: "A1", Stock: 3}}
	conn.source.maintenances = []entity.MaintenanceRow{{IDPlanMantenimientoEnca: 1}}
	conn.stock.quantity["A1"] = 0
	conn.storeErr = errBoom

	res := newRunUseCase(conn, logger.Nop()).Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, entity.RunCompletedWithErrors, res.Status)
	assert.Equal(t, int64(3), conn.stock.quantity["A1"])
	assert.Equal(t, 1, res.Maintenances.Count(entity.OutcomeQueryError))
	assert.Equal(t, 1, conn.stock.closed)
	assert.Equal(t, 1, conn.source.closed)
}

func TestRun_StockCaidoSigueConMantenimientos(t *testing.T) {
	conn := newFakeConnector()
	conn.source.accessories = []entity.AccessoryRow{{Codigo: "A1", Stock: 3}}
	conn.source.maintenances = []entity.MaintenanceRow{{IDPlanMantenimientoEnca: 42, Descripcion: ptr("10.000 km")}}
	conn.stockErr = errBoom

	res := newRunUseCase(conn, logger.Nop()).Run(context.Background())

	require.NoError(t, res.Err)
	assert.Equal(t, entity.RunCompletedWithErrors, res.Status)
	assert.Equal(t, 1, res.Accessories.Failed())
	require.NotNil(t, res.Maintenances)
	assert.Equal(t, 1, res.Maintenances.Count(entity.OutcomeInserted))
	assert.Equal(t, 1, conn.store.inserts)
	assert.Equal(t, []string{
		"source:open",
		"source:accessories",
		"stock:open",
		"source:maintenances",
		"store:open", "store:get:42", "store:insert:42", "store:close",
		"source:close",
	}, conn.ev.log)
}
