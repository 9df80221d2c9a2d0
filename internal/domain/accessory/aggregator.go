package accessory

import "github.com/jhoicas/dns-sync/internal/domain/entity"

// Aggregate consolida las filas por código (una por bodega en el DNS) en un accesorio por código.
// El stock se suma; bodega, descripción y valores se toman de la primera fila vista.
// El resultado respeta el orden de primera aparición de cada código.
//
// La clave es el código crudo, no el normalizado: si dos códigos distintos normalizaran
// al mismo sku habría dos registros para ese sku.
func Aggregate(rows []entity.AccessoryRow) []entity.AccessoryDNS {
	index := make(map[string]int, len(rows))
	out := make([]entity.AccessoryDNS, 0, len(rows))

	for _, row := range rows {
		if i, ok := index[row.Codigo]; ok {
			out[i].Stock += row.Stock
			continue
		}
		index[row.Codigo] = len(out)
		out = append(out, entity.AccessoryDNS{
			Bodega:              row.Bodega,
			DesBodega:           row.DesBodega,
			Codigo:              row.Codigo,
			CodigoStock:         NormalizeCode(row.Codigo),
			Descripcion:         row.Descripcion,
			ValorUnitarioSinIva: row.ValorUnitarioSinIva,
			ValorConIva:         row.ValorConIva,
			Stock:               row.Stock,
		})
	}
	return out
}
