package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/dns-sync/internal/domain/accessory"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/maintenance"
	"github.com/jhoicas/dns-sync/pkg/logger"
)

// RunUseCase ejecuta una corrida completa: conecta al DNS, sincroniza accesorios y luego
// mantenimientos. Las pasadas son secuenciales y comparten la conexión de origen.
type RunUseCase struct {
	connector    Connector
	accessories  *AccessoryUseCase
	maintenances *MaintenanceUseCase
	log          *logger.Logger
}

// NewRunUseCase construye el orquestador.
func NewRunUseCase(
	connector Connector,
	accessories *AccessoryUseCase,
	maintenances *MaintenanceUseCase,
	log *logger.Logger,
) *RunUseCase {
	return &RunUseCase{
		connector:    connector,
		accessories:  accessories,
		maintenances: maintenances,
		log:          log,
	}
}

// Run nunca devuelve error: un fallo de conexión o de lectura del DNS aborta el resto de la
// corrida y queda en RunResult.Err con estado aborted. Un destino caído solo afecta su pasada.
func (uc *RunUseCase) Run(ctx context.Context) *entity.RunResult {
	res := &entity.RunResult{RunID: uuid.NewString()}
	log := uc.log.With().Str("run_id", res.RunID).Logger()
	ctx = log.WithContext(ctx)

	log.Info().Msg("iniciando sincronización con el DNS")

	if err := uc.run(ctx, res); err != nil {
		res.Status = entity.RunAborted
		res.Err = err
		log.Error().Err(err).Msg("el proceso no se pudo completar")
		return res
	}

	res.Status = entity.RunCompleted
	if res.Accessories.Failed() > 0 || res.Maintenances.Failed() > 0 {
		res.Status = entity.RunCompletedWithErrors
	}
	log.Info().Str("estado", string(res.Status)).Msg("sincronización finalizada")
	return res
}

func (uc *RunUseCase) run(ctx context.Context, res *entity.RunResult) error {
	source, err := uc.connector.OpenSource(ctx)
	if err != nil {
		return fmt.Errorf("conectar al DNS: %w", err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			log := loggerFrom(ctx, uc.log)
			log.Warn().Err(err).Msg("cerrar conexión al DNS")
		}
	}()

	rows, err := source.ListAccessoryRows(ctx)
	if err != nil {
		return fmt.Errorf("leer accesorios del DNS: %w", err)
	}
	res.Accessories, err = uc.accessories.Sync(ctx, accessory.Aggregate(rows))
	if err != nil {
		return fmt.Errorf("sincronizar accesorios: %w", err)
	}

	mrows, err := source.ListMaintenanceRows(ctx)
	if err != nil {
		return fmt.Errorf("leer mantenimientos del DNS: %w", err)
	}
	res.Maintenances, err = uc.maintenances.Sync(ctx, maintenance.MapAll(mrows))
	if err != nil {
		return fmt.Errorf("sincronizar mantenimientos: %w", err)
	}
	return nil
}
