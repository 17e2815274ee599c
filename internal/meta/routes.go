package meta

import "github.com/go-chi/chi/v5"

// RegisterRoutes monta las rutas de metadatos en la raíz.
// El índice también se sirve en GET /api; eso lo monta main dentro del subrouter.
func RegisterRoutes(route chi.Router) {
	route.Get("/", IndexHandler())
	route.Get("/version", VersionHandler())
}
