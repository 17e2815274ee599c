package meta

import (
	"net/http"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// Metadatos de build. Se inyectan por ldflags:
//
//	-X github.com/Lelo88/items-api-golang/internal/meta.Version=v1.2.3
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

const serviceName = "items-api"

// IndexHandler responde el listado de endpoints del servicio (GET / y GET /api).
func IndexHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		httpx.OK(writer, request, http.StatusOK, map[string]any{
			"service": serviceName,
			"version": Version,
			"endpoints": map[string]string{
				"GET /api/items":         "list all items",
				"GET /api/items/{id}":    "fetch one item",
				"POST /api/items":        "create an item",
				"PUT /api/items/{id}":    "replace name/description",
				"PATCH /api/items/{id}":  "partially update an item",
				"DELETE /api/items/{id}": "delete an item",
				"GET /version":           "version/build metadata",
				"GET /health":            "liveness",
				"GET /ready":             "readiness",
			},
		})
	}
}

// VersionHandler responde metadatos estáticos de versión/build (GET /version).
func VersionHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		httpx.OK(writer, request, http.StatusOK, map[string]string{
			"service": serviceName,
			"version": Version,
			"commit":  Commit,
			"date":    Date,
		})
	}
}
