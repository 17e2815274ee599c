package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// Pinger es lo que el handler necesita para chequear la DB; *pgxpool.Pool lo cumple.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler encapsula endpoints de health.
type Handler struct {
	pool Pinger
}

// New crea un handler de health.
func New(pool Pinger) *Handler {
	return &Handler{pool: pool}
}

// Health indica si el proceso está vivo.
// NO chequea base de datos. Eso va en /ready.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si el servicio puede atender tráfico: exige que la DB responda al ping.
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := handler.pool.Ping(ctx); err != nil {
		httpx.Fail(w, r, http.StatusServiceUnavailable, "database not reachable")
		return
	}

	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ready",
	})
}
