package logging

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New construye el logger zerolog de la aplicación.
// Por defecto: JSON a stdout, nivel info. Formato "console" es opt-in para desarrollo.
func New(level, format string) zerolog.Logger {
	parsedLevel := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		parsedLevel = parsed
	}

	output := zerolog.New(os.Stdout)
	if strings.ToLower(strings.TrimSpace(format)) == "console" {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return output.
		Level(parsedLevel).
		With().
		Timestamp().
		Str("app", "items-api").
		Logger()
}

// RequestLogger es un middleware de chi que loguea cada request con el logger estructurado.
// Reemplaza al middleware.Logger de chi para mantener todo el log en JSON.
func RequestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			wrapped := middleware.NewWrapResponseWriter(writer, request.ProtoMajor)

			next.ServeHTTP(wrapped, request)

			logger.Info().
				Str("request_id", middleware.GetReqID(request.Context())).
				Str("method", request.Method).
				Str("path", request.URL.Path).
				Str("remote", request.RemoteAddr).
				Int("status", wrapped.Status()).
				Int("bytes", wrapped.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}
