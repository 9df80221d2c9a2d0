package dns

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/microsoft/go-mssqldb" // registra el driver "sqlserver"

	"github.com/jhoicas/dns-sync/pkg/config"
)

// Open abre la conexión de solo lectura al SQL Server del DNS y verifica que responda.
// Se limita a una conexión física: las lecturas de la corrida son secuenciales.
func Open(ctx context.Context, cfg config.SourceDBConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlserver", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("abrir DNS: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DNS %s: %w", cfg.Server, err)
	}
	return db, nil
}
