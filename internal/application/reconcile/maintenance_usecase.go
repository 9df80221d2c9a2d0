package reconcile

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhoicas/dns-sync/internal/domain"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
	"github.com/jhoicas/dns-sync/pkg/logger"
)

// MaintenanceUseCase hace upsert de los planes de mantenimiento del DNS en la tienda, por id_dns.
type MaintenanceUseCase struct {
	connector Connector
	log       *logger.Logger
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(connector Connector, log *logger.Logger) *MaintenanceUseCase {
	return &MaintenanceUseCase{connector: connector, log: log}
}

// Sync abre la base de la tienda, reconcilia cada plan en orden (UPDATE si existe el id_dns,
// INSERT si no) y cierra la conexión al terminar. Mismo manejo de errores que AccessoryUseCase.Sync:
// si la tienda no abre, todos los planes quedan como QUERY_ERROR.
func (uc *MaintenanceUseCase) Sync(ctx context.Context, maintenances []entity.MaintenanceDNS) (*entity.SyncReport, error) {
	log := loggerFrom(ctx, uc.log)
	report := &entity.SyncReport{Pipeline: entity.PipelineMaintenances, Total: len(maintenances)}
	log.Info().Int("cantidad", len(maintenances)).Msg("sincronizando mantenimientos")

	store, err := uc.connector.OpenStore(ctx)
	if err != nil {
		err = fmt.Errorf("%w: abrir base de la tienda: %w", domain.ErrQuery, err)
		log.Error().Err(err).Int("afectados", len(maintenances)).Msg("no se pudo conectar a la base de la tienda")
		keys, labels := make([]string, len(maintenances)), make([]string, len(maintenances))
		for i := range maintenances {
			keys[i], labels[i] = strconv.FormatInt(maintenances[i].ID, 10), maintenances[i].Label()
		}
		unreachable(report, keys, labels, err)
		return report, nil
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar base de la tienda")
		}
	}()

	for i := range maintenances {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Add(uc.syncOne(ctx, log, store, &maintenances[i]))
	}

	log.Info().
		Int("actualizados", report.Count(entity.OutcomeUpdated)).
		Int("insertados", report.Count(entity.OutcomeInserted)).
		Int("fallidos", report.Failed()).
		Msg("mantenimientos sincronizados")
	return report, nil
}

func (uc *MaintenanceUseCase) syncOne(ctx context.Context, base zerolog.Logger, repo repository.MaintenanceStoreRepository, m *entity.MaintenanceDNS) entity.RecordOutcome {
	log := base.With().Str("descripcion", m.Label()).Int64("id", m.ID).Logger()
	outcome := entity.RecordOutcome{Key: strconv.FormatInt(m.ID, 10), Label: m.Label()}

	kind, err := uc.upsert(ctx, log, repo, m)
	if err != nil {
		outcome.Kind = classify(err)
		outcome.Err = err
		log.Error().Str("resultado", string(outcome.Kind)).Err(err).Msg("el mantenimiento no se pudo actualizar")
		return outcome
	}
	outcome.Kind = kind
	return outcome
}

func (uc *MaintenanceUseCase) upsert(ctx context.Context, log zerolog.Logger, repo repository.MaintenanceStoreRepository, m *entity.MaintenanceDNS) (entity.OutcomeKind, error) {
	log.Debug().Msg("procesando mantenimiento")

	existing, err := repo.GetByIDDNS(ctx, m.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrQuery, err)
	}

	if existing != nil {
		if err := repo.Update(ctx, m); err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrWrite, err)
		}
		log.Info().Msg("mantenimiento actualizado")
		return entity.OutcomeUpdated, nil
	}

	if err := repo.Create(ctx, m); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}
	log.Info().Msg("mantenimiento insertado")
	return entity.OutcomeInserted, nil
}
