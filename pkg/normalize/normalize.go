// Package normalize pliega texto para búsqueda: minúsculas y sin marcas
// diacríticas, de modo que "agua" encuentre "Água" y "cafe" encuentre "Café".
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve s en minúsculas y sin acentos. Si la transformación falla
// (entrada no-UTF8), devuelve al menos la versión en minúsculas.
// El transformer se construye por llamada: no es seguro compartirlo entre goroutines.
func Fold(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
