package entity

import "github.com/shopspring/decimal"

// AccessoryRow es una fila cruda de la vista de accesorios del DNS (una por código y bodega).
type AccessoryRow struct {
	Codigo              string
	Bodega              string
	DesBodega           string
	Descripcion         string
	ValorUnitarioSinIva decimal.NullDecimal
	ValorConIva         decimal.NullDecimal
	Stock               int64
}

// AccessoryDNS es el accesorio canónico tras agregar las bodegas: un registro por código.
// Stock es la suma de todas las filas con el mismo código; el resto viene de la primera fila vista.
type AccessoryDNS struct {
	Bodega              string
	DesBodega           string
	Codigo              string // código en el DNS
	CodigoStock         string // código normalizado, se compara contra el sku de la tienda
	Descripcion         string
	ValorUnitarioSinIva decimal.NullDecimal
	ValorConIva         decimal.NullDecimal
	Stock               int64
}

// AccessoryStock proyección de la tabla de stock de la tienda usada para verificar existencia.
type AccessoryStock struct {
	ProductID     int64
	SKU           string
	StockQuantity decimal.NullDecimal
}
