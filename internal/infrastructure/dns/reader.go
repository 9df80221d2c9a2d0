package dns

import (
	"context"
	"database/sql"

	"github.com/jhoicas/dns-sync/internal/application/reconcile"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
)

var (
	_ repository.AccessorySourceRepository   = (*Reader)(nil)
	_ repository.MaintenanceSourceRepository = (*Reader)(nil)
	_ reconcile.SourceSession                = (*Reader)(nil)
)

var (
	accessoryColumns = []string{
		"codigo", "bodega", "des_bodega", "descripcion", "valor_unitario_sin_iva", "valorconiva", "stock",
	}
	maintenanceColumns = []string{
		"id_plan_mantenimiento_enca", "modelo", "ano", "DESCRIPCION", "kilometraje", "notas", "precio",
	}
)

// Reader lee las vistas de accesorios y planes de mantenimiento del DNS. Es dueño de la conexión.
type Reader struct {
	db               *sql.DB
	accessoriesView  string
	maintenancesView string
}

// NewReader construye el lector sobre una conexión ya abierta.
func NewReader(db *sql.DB, accessoriesView, maintenancesView string) *Reader {
	return &Reader{db: db, accessoriesView: accessoriesView, maintenancesView: maintenancesView}
}

// ListAccessoryRows devuelve todas las filas de la vista de accesorios (una por código y bodega).
// Una columna faltante o un valor con tipo inesperado devuelve domain.ErrSchemaMismatch.
func (r *Reader) ListAccessoryRows(ctx context.Context) ([]entity.AccessoryRow, error) {
	var out []entity.AccessoryRow
	err := scanView(ctx, r.db, r.accessoriesView, accessoryColumns, func(rec *record) error {
		row := entity.AccessoryRow{
			Codigo:              rec.requiredText("codigo"),
			Bodega:              rec.text("bodega"),
			DesBodega:           rec.text("des_bodega"),
			Descripcion:         rec.text("descripcion"),
			ValorUnitarioSinIva: rec.number("valor_unitario_sin_iva"),
			ValorConIva:         rec.number("valorconiva"),
			Stock:               rec.integer("stock"),
		}
		if rec.err != nil {
			return rec.err
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMaintenanceRows devuelve todas las filas de la vista de planes de mantenimiento.
func (r *Reader) ListMaintenanceRows(ctx context.Context) ([]entity.MaintenanceRow, error) {
	var out []entity.MaintenanceRow
	err := scanView(ctx, r.db, r.maintenancesView, maintenanceColumns, func(rec *record) error {
		row := entity.MaintenanceRow{
			IDPlanMantenimientoEnca: rec.requiredInteger("id_plan_mantenimiento_enca"),
			Modelo:                  rec.optText("modelo"),
			Ano:                     rec.optText("ano"),
			Descripcion:             rec.optText("DESCRIPCION"),
			Kilometraje:             rec.optInteger("kilometraje"),
			Notas:                   rec.optText("notas"),
			Precio:                  rec.number("precio"),
		}
		if rec.err != nil {
			return rec.err
		}
		out = append(out, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close libera la conexión al DNS.
func (r *Reader) Close() error {
	return r.db.Close()
}
