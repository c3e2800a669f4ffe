// Package views contiene las plantillas HTML y los recursos estáticos de la
// tienda, embebidos en el binario.
package views

import "embed"

// FS plantillas (*.html) y recursos estáticos (assets/).
//
//go:embed *.html layouts/*.html admin/*.html assets
var FS embed.FS
