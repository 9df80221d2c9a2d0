package reconcile

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dns-sync/pkg/logger"
)

// loggerFrom devuelve el logger de la corrida (con run_id) si viene en el contexto; si no, el base.
func loggerFrom(ctx context.Context, base *logger.Logger) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return base.Zerolog()
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return "null"
	}
	return d.Decimal.String()
}
