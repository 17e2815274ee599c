package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Chi guarda el request id en el contexto del request y también acepta
// el header "X-Request-Id" entrante. Este helper lo resuelve en ese orden.
func RequestIDFrom(request *http.Request) string {
	if request == nil {
		return ""
	}
	if id := middleware.GetReqID(request.Context()); id != "" {
		return id
	}
	return request.Header.Get("X-Request-Id")
}
