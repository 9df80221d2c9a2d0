package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/dns-sync/internal/domain"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
)

var _ repository.MaintenanceStoreRepository = (*MaintenanceStoreRepo)(nil)

// MaintenanceStoreRepo implementación de MaintenanceStoreRepository sobre MySQL.
type MaintenanceStoreRepo struct {
	db    *sql.DB
	table string
}

// NewMaintenanceStoreRepository construye el adaptador sobre la tabla indicada.
func NewMaintenanceStoreRepository(db *sql.DB, table string) *MaintenanceStoreRepo {
	return &MaintenanceStoreRepo{db: db, table: table}
}

// GetByIDDNS obtiene el mantenimiento por id_dns; (nil, nil) si no existe.
func (r *MaintenanceStoreRepo) GetByIDDNS(ctx context.Context, idDNS int64) (*entity.MaintenanceStore, error) {
	query := `SELECT id_dns, id, descripcion FROM ` + r.table + ` WHERE id_dns = ?`
	var (
		m    entity.MaintenanceStore
		desc sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, idDNS).Scan(&m.IDDNS, &m.ID, &desc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mantenimiento: %w", err)
	}
	if desc.Valid {
		m.Descripcion = &desc.String
	}
	return &m, nil
}

// Update reescribe todos los campos del mantenimiento con ese id_dns. Notas va a la columna operacion.
func (r *MaintenanceStoreRepo) Update(ctx context.Context, m *entity.MaintenanceDNS) error {
	query := `UPDATE ` + r.table + `
		SET modelo = ?, ano = ?, descripcion = ?, kilometraje = ?, operacion = ?, precio = ?
		WHERE id_dns = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Modelo, m.Ano, m.Descripcion, m.Kilometraje, m.Notas, m.Precio, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update mantenimiento: %w", err)
	}
	return nil
}

// Create inserta el mantenimiento con su id_dns.
func (r *MaintenanceStoreRepo) Create(ctx context.Context, m *entity.MaintenanceDNS) error {
	query := `INSERT INTO ` + r.table + ` (modelo, ano, descripcion, kilometraje, operacion, precio, id_dns)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.Modelo, m.Ano, m.Descripcion, m.Kilometraje, m.Notas, m.Precio, m.ID,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return fmt.Errorf("insert mantenimiento id_dns %d: %w", m.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert mantenimiento: %w", err)
	}
	return nil
}
