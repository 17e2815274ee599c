package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config agrupa la configuración necesaria para correr la aplicación.
type Config struct {
	Port        string
	DatabaseURL string
	APIKey      string
	LogLevel    string
	LogFormat   string
}

// AuthEnabled indica si las rutas mutantes exigen la clave pre-compartida.
// La autenticación se activa únicamente si API_KEY viene configurada.
func (config Config) AuthEnabled() bool {
	return config.APIKey != ""
}

// Load lee variables de entorno y valida lo mínimo indispensable.
// Si existe un archivo .env lo carga primero; no pisa variables ya exportadas.
func Load() (Config, error) {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	// Normalizamos por si alguien manda ":8080"
	port = strings.TrimPrefix(port, ":")

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		return Config{}, fmt.Errorf("missing required env var: DATABASE_URL")
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := strings.TrimSpace(os.Getenv("LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "json"
	}

	return Config{
		Port:        port,
		DatabaseURL: databaseURL,
		APIKey:      strings.TrimSpace(os.Getenv("API_KEY")),
		LogLevel:    logLevel,
		LogFormat:   logFormat,
	}, nil
}
