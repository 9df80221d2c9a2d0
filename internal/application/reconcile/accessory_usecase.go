package reconcile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/dns-sync/internal/domain"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
	"github.com/jhoicas/dns-sync/pkg/logger"
)

// AccessoryUseCase actualiza el stock de la tienda con los accesorios agregados del DNS.
// Nunca inserta: un sku que no existe en la tienda queda reportado como NOT_FOUND.
type AccessoryUseCase struct {
	connector Connector
	log       *logger.Logger
}

// NewAccessoryUseCase construye el caso de uso.
func NewAccessoryUseCase(connector Connector, log *logger.Logger) *AccessoryUseCase {
	return &AccessoryUseCase{connector: connector, log: log}
}

// Sync abre la base de stock, reconcilia los accesorios uno a uno en el orden recibido y
// cierra la conexión al terminar, aunque haya registros fallidos.
// Los errores por registro quedan en el reporte; si la base de stock no abre, todos los
// accesorios quedan como QUERY_ERROR. Solo se devuelve error si el contexto se canceló.
func (uc *AccessoryUseCase) Sync(ctx context.Context, accessories []entity.AccessoryDNS) (*entity.SyncReport, error) {
	log := loggerFrom(ctx, uc.log)
	report := &entity.SyncReport{Pipeline: entity.PipelineAccessories, Total: len(accessories)}
	log.Info().Int("cantidad", len(accessories)).Msg("sincronizando accesorios")

	stock, err := uc.connector.OpenStock(ctx)
	if err != nil {
		err = fmt.Errorf("%w: abrir base de stock: %w", domain.ErrQuery, err)
		log.Error().Err(err).Int("afectados", len(accessories)).Msg("no se pudo conectar a la base de stock")
		keys, labels := make([]string, len(accessories)), make([]string, len(accessories))
		for i, a := range accessories {
			keys[i], labels[i] = a.CodigoStock, a.Descripcion
		}
		unreachable(report, keys, labels, err)
		return report, nil
	}
	defer func() {
		if err := stock.Close(); err != nil {
			log.Warn().Err(err).Msg("cerrar base de stock")
		}
	}()

	for _, a := range accessories {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Add(uc.syncOne(ctx, log, stock, a))
	}

	log.Info().
		Int("actualizados", report.Count(entity.OutcomeUpdated)).
		Int("no_encontrados", report.Count(entity.OutcomeNotFound)).
		Int("fallidos", report.Failed()).
		Msg("accesorios sincronizados")
	return report, nil
}

func (uc *AccessoryUseCase) syncOne(ctx context.Context, base zerolog.Logger, repo repository.AccessoryStockRepository, a entity.AccessoryDNS) entity.RecordOutcome {
	log := base.With().Str("descripcion", a.Descripcion).Str("codigo_stock", a.CodigoStock).Logger()
	outcome := entity.RecordOutcome{Key: a.CodigoStock, Label: a.Descripcion, Kind: entity.OutcomeUpdated}

	if err := uc.reconcile(ctx, log, repo, a); err != nil {
		outcome.Kind = classify(err)
		outcome.Err = err
		ev := log.Error()
		if outcome.Kind == entity.OutcomeNotFound {
			ev = log.Warn()
		}
		ev.Str("resultado", string(outcome.Kind)).Err(err).Msg("el accesorio no se pudo actualizar")
	}
	return outcome
}

// reconcile: una lectura por sku y, si existe, una escritura. El stock anterior solo se registra en el log.
func (uc *AccessoryUseCase) reconcile(ctx context.Context, log zerolog.Logger, repo repository.AccessoryStockRepository, a entity.AccessoryDNS) error {
	log.Debug().Msg("procesando accesorio")

	current, err := repo.GetBySKU(ctx, a.CodigoStock)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrQuery, err)
	}
	if current == nil {
		return fmt.Errorf("%w: sku %s", domain.ErrNotFound, a.CodigoStock)
	}

	log.Info().
		Str("stock_actual", nullDecimalString(current.StockQuantity)).
		Int64("stock_nuevo", a.Stock).
		Msg("actualizando stock")

	if err := repo.UpdateStockQuantity(ctx, a.CodigoStock, a.Stock); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrWrite, err)
	}
	return nil
}
