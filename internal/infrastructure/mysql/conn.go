package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	drv "github.com/go-sql-driver/mysql"

	"github.com/jhoicas/dns-sync/pkg/config"
)

// DSN arma el connection string del driver a partir de la configuración del destino.
func DSN(cfg config.DBConfig) string {
	c := drv.NewConfig()
	c.User = cfg.User
	c.Passwd = cfg.Password
	c.Net = "tcp"
	c.Addr = cfg.Addr()
	c.DBName = cfg.Name
	c.ParseTime = true
	return c.FormatDSN()
}

// Open abre una conexión a la base destino y verifica que responda.
// Una sola conexión física por pasada: las escrituras son secuenciales.
func Open(ctx context.Context, cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("abrir mysql: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql %s: %w", cfg.Addr(), err)
	}
	return db, nil
}

// isDuplicateEntry verifica si un error es una violación de clave única (1062).
func isDuplicateEntry(err error) bool {
	var myErr *drv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return false
}
