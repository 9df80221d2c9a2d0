package entity

import "github.com/shopspring/decimal"

// MaintenanceRow es una fila cruda de la vista de planes de mantenimiento del DNS.
// Los campos opcionales quedan en nil cuando la columna viene NULL.
type MaintenanceRow struct {
	IDPlanMantenimientoEnca int64
	Modelo                  *string
	Ano                     *string
	Descripcion             *string
	Kilometraje             *int64
	Notas                   *string
	Precio                  decimal.NullDecimal
}

// MaintenanceDNS plan de mantenimiento canónico. ID es el identificador del DNS (id_dns en destino).
type MaintenanceDNS struct {
	ID          int64
	Modelo      *string
	Ano         *string
	Descripcion *string
	Kilometraje *int64
	Notas       *string // se escribe en la columna operacion
	Precio      decimal.NullDecimal
}

// Label texto para logs: descripción si existe.
func (m MaintenanceDNS) Label() string {
	if m.Descripcion == nil {
		return ""
	}
	return *m.Descripcion
}

// MaintenanceStore proyección de la tabla de mantenimientos de la tienda.
type MaintenanceStore struct {
	IDDNS       int64
	ID          int64
	Descripcion *string
}
