package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/dns-sync/internal/domain"
	"github.com/jhoicas/dns-sync/internal/domain/entity"
	"github.com/jhoicas/dns-sync/internal/domain/repository"
)

var _ repository.MaintenanceStoreRepository = (*MaintenanceStoreRepo)(nil)

// MaintenanceStoreRepo implementación de MaintenanceStoreRepository sobre PostgreSQL.
type MaintenanceStoreRepo struct {
	q     Querier
	table string
}

// NewMaintenanceStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaintenanceStoreRepository(q Querier, table string) *MaintenanceStoreRepo {
	return &MaintenanceStoreRepo{q: q, table: table}
}

// GetByIDDNS obtiene el mantenimiento por id_dns; (nil, nil) si no existe.
func (r *MaintenanceStoreRepo) GetByIDDNS(ctx context.Context, idDNS int64) (*entity.MaintenanceStore, error) {
	query := `SELECT id_dns, id, descripcion FROM ` + r.table + ` WHERE id_dns = $1`
	var m entity.MaintenanceStore
	err := r.q.QueryRow(ctx, query, idDNS).Scan(&m.IDDNS, &m.ID, &m.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mantenimiento: %w", err)
	}
	return &m, nil
}

// Update reescribe todos los campos del mantenimiento con ese id_dns. Notas va a la columna operacion.
func (r *MaintenanceStoreRepo) Update(ctx context.Context, m *entity.MaintenanceDNS) error {
	query := `UPDATE ` + r.table + `
		SET modelo = $1, ano = $2, descripcion = $3, kilometraje = $4, operacion = $5, precio = $6
		WHERE id_dns = $7`
	_, err := r.q.Exec(ctx, query,
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
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.Modelo, m.Ano, m.Descripcion, m.Kilometraje, m.Notas, m.Precio, m.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert mantenimiento id_dns %d: %w", m.ID, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert mantenimiento: %w", err)
	}
	return nil
}
