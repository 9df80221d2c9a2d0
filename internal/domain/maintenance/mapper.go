package maintenance

import "github.com/jhoicas/dns-sync/internal/domain/entity"

// Map proyecta una fila del DNS al plan de mantenimiento canónico (1:1, sin validar).
func Map(row entity.MaintenanceRow) entity.MaintenanceDNS {
	return entity.MaintenanceDNS{
		ID:          row.IDPlanMantenimientoEnca,
		Modelo:      row.Modelo,
		Ano:         row.Ano,
		Descripcion: row.Descripcion,
		Kilometraje: row.Kilometraje,
		Notas:       row.Notas,
		Precio:      row.Precio,
	}
}

// MapAll aplica Map conservando el orden del origen.
func MapAll(rows []entity.MaintenanceRow) []entity.MaintenanceDNS {
	out := make([]entity.MaintenanceDNS, 0, len(rows))
	for _, row := range rows {
		out = append(out, Map(row))
	}
	return out
}
