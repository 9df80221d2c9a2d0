package reconcile

import (
	"errors"

	"github.com/jhoicas/dns-sync/internal/domain"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
)

// classify traduce el error de un registro al tipo de resultado del reporte.
func classify(err error) entity.OutcomeKind {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return entity.OutcomeNotFound
	case errors.Is(err, domain.ErrWrite):
		return entity.OutcomeWriteError
	default:
		return entity.OutcomeQueryError
	}
}

// unreachable marca todos los registros de la pasada como QUERY_ERROR cuando el destino no
// se pudo abrir. La corrida sigue con la otra pasada, que usa su propia conexión.
func unreachable(report *entity.SyncReport, keys, labels []string, err error) {
	for i := range keys {
		report.Add(entity.RecordOutcome{Key: keys[i], Label: labels[i], Kind: entity.OutcomeQueryError, Err: err})
	}
}
