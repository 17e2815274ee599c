package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/Lelo88/items-api-golang/internal/auth"
	"github.com/Lelo88/items-api-golang/internal/config"
	"github.com/Lelo88/items-api-golang/internal/db"
	"github.com/Lelo88/items-api-golang/internal/health"
	"github.com/Lelo88/items-api-golang/internal/httpx"
	"github.com/Lelo88/items-api-golang/internal/items"
	"github.com/Lelo88/items-api-golang/internal/logging"
	"github.com/Lelo88/items-api-golang/internal/meta"
	"github.com/Lelo88/items-api-golang/internal/metrics"
)

// appPool es lo que la app necesita del pool de DB. *pgxpool.Pool lo cumple;
// los tests usan un fake.
type appPool interface {
	Ping(ctx context.Context) error
	Close()
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// appDeps agrupa las dependencias inyectables de run, para poder testear
// el arranque sin red ni DB reales.
type appDeps struct {
	loadConfig   func() (config.Config, error)
	newLogger    func(level, format string) zerolog.Logger
	newPool      func(ctx context.Context, url string) (appPool, error)
	ensureSchema func(ctx context.Context, database db.Execer) error
	serve        func(server *http.Server) error
	shutdown     func(ctx context.Context, server *http.Server) error
}

func defaultDeps() appDeps {
	return appDeps{
		loadConfig: config.Load,
		newLogger:  logging.New,
		newPool: func(ctx context.Context, url string) (appPool, error) {
			return db.NewPool(ctx, url)
		},
		ensureSchema: db.EnsureSchema,
		serve: func(server *http.Server) error {
			return server.ListenAndServe()
		},
		shutdown: func(ctx context.Context, server *http.Server) error {
			return server.Shutdown(ctx)
		},
	}
}

func run(ctx context.Context, deps appDeps) error {
	cfg, err := deps.loadConfig()
	if err != nil {
		return err
	}

	logger := deps.newLogger(cfg.LogLevel, cfg.LogFormat)

	pool, err := deps.newPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := deps.ensureSchema(ctx, pool); err != nil {
		return err
	}

	metrics.Register()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           buildRouter(cfg, &logger, pool),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- deps.serve(server)
	}()

	logger.Info().
		Str("addr", server.Addr).
		Bool("auth_enabled", cfg.AuthEnabled()).
		Msg("listening")

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		// Apagado ordenado: dejamos terminar los requests en vuelo.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info().Msg("shutting down")
		return deps.shutdown(shutdownCtx, server)
	}
}

func buildRouter(cfg config.Config, logger *zerolog.Logger, pool appPool) http.Handler {
	router := chi.NewRouter()

	// Middlewares base para trazabilidad y estabilidad.
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.RequestLogger(logger))
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(10 * time.Second))

	// Errores de routing se manejan a nivel router, con el mismo sobre JSON.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusNotFound, "resource not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.Fail(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	meta.RegisterRoutes(router)

	healthHandler := health.New(pool)
	router.Get("/health", healthHandler.Health)
	router.Get("/ready", healthHandler.Ready)

	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	itemsHandler := items.NewHandler(items.NewService(items.NewRepository(pool)), logger)
	router.Route("/api", func(api chi.Router) {
		api.Get("/", meta.IndexHandler())
		items.RegisterRoutes(api, itemsHandler, auth.RequireKey(cfg.APIKey))
	})

	return router
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, defaultDeps()); err != nil {
		// Configuración o arranque inválidos: no corremos a medias.
		fatalLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		fatalLogger.Fatal().Err(err).Msg("startup failed")
	}
}
