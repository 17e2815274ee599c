package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "items_api",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		},
		[]string{"route", "status"},
	)
)

// Register registra las métricas en el registry global. Seguro de llamar más de una vez.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests)
	})
}

// Middleware cuenta requests por patrón de ruta chi y status.
// Se usa el patrón ({id}) y no el path real para no explotar la cardinalidad.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request)

		route := "unmatched"
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		httpRequests.WithLabelValues(route, strconv.Itoa(wrapped.Status())).Inc()
	})
}

// Handler expone /metrics en formato Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
