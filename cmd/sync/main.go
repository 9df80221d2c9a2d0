// sync es el job programado que lleva accesorios (stock) y planes de mantenimiento del DNS
// a las bases de la tienda. Corre una vez y termina; los argumentos del proceso se ignoran.
//
// Exit codes: 0 completado, 2 completado con errores en registros, 1 abortado.
// Con SYNC_LEGACY_EXIT_CODE=true siempre termina con 0.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/jhoicas/dns-sync/internal/application/reconcile"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/infrastructure/connector"
	"github.com/jhoicas/dns-sync/pkg/config"
	"github.com/jhoicas/dns-sync/pkg/logger"
)

const (
	exitCompleted           = 0
	exitAborted             = 1
	exitCompletedWithErrors = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		return exitAborted
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("stock_driver", cfg.Stock.Driver).
		Str("store_driver", cfg.Store.Driver).
		Msg("iniciando job")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn := connector.New(*cfg)
	runUC := reconcile.NewRunUseCase(
		conn,
		reconcile.NewAccessoryUseCase(conn, log),
		reconcile.NewMaintenanceUseCase(conn, log),
		log,
	)

	res := runUC.Run(ctx)
	logSummary(log, res)
	return exitCode(res, cfg.Sync.LegacyExitCode)
}

func exitCode(res *entity.RunResult, legacy bool) int {
	if legacy {
		return exitCompleted
	}
	switch res.Status {
	case entity.RunCompleted:
		return exitCompleted
	case entity.RunCompletedWithErrors:
		return exitCompletedWithErrors
	default:
		return exitAborted
	}
}

func logSummary(log *logger.Logger, res *entity.RunResult) {
	ev := log.Info().Str("run_id", res.RunID).Str("estado", string(res.Status))
	for _, r := range []*entity.SyncReport{res.Accessories, res.Maintenances} {
		if r == nil {
			continue
		}
		ev = ev.Dict(r.Pipeline, zerolog.Dict().
			Int("total", r.Total).
			Int("procesados", r.Processed()).
			Int("actualizados", r.Count(entity.OutcomeUpdated)).
			Int("insertados", r.Count(entity.OutcomeInserted)).
			Int("no_encontrados", r.Count(entity.OutcomeNotFound)).
			Int("fallidos", r.Failed()))
	}
	if res.Err != nil {
		ev = ev.AnErr("causa", res.Err)
	}
	ev.Msg("resumen de la corrida")
}
