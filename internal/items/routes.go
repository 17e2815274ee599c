package items

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra rutas de items en el router (montado bajo /api).
// Las rutas de lectura son públicas; las mutantes pasan por requireKey.
// Mantener esto separado hace que main.go no crezca sin control.
func RegisterRoutes(route chi.Router, handler *Handler, requireKey func(http.Handler) http.Handler) {
	route.Get("/items", handler.List)
	route.Get("/items/{id}", handler.GetByID)

	route.Group(func(route chi.Router) {
		route.Use(requireKey)
		route.Post("/items", handler.Create)
		route.Put("/items/{id}", handler.Put)
		route.Patch("/items/{id}", handler.Patch)
		route.Delete("/items/{id}", handler.Delete)
	})
}
