package accessory

import (
	"regexp"
	"strings"
)

var disSuffixRe = regexp.MustCompile(`^[a-zA-Z0-9]*-DIS$`)

// NormalizeCode convierte el código del DNS al sku de la tienda.
//
// Los códigos con sufijo "-DIS" se cortan por "-DSI", que nunca aparece en ellos
// (el prefijo es alfanumérico), así que la función devuelve siempre el código tal cual.
// Se conserva ese comportamiento: hasta confirmar con negocio si el sufijo "-DIS"
// debía quitarse, el sku de la tienda es el mismo código del DNS.
// La regexp distingue mayúsculas ("-dis" no entra); da igual porque el resultado no cambia.
func NormalizeCode(codigo string) string {
	if !disSuffixRe.MatchString(codigo) {
		return codigo
	}
	return strings.Split(codigo, "-DSI")[0]
}
