package config

import (
	"os"
	"path/filepath"
)

// Config holds the handful of settings the app reads from the environment.
// main loads .env first (via godotenv), so values can come from either place.
type Config struct {
	Port    string
	DataDir string
}

// Load reads the environment with the same fallbacks the app has always used.
func Load() Config {
	cfg := Config{
		Port:    os.Getenv("PORT"),
		DataDir: os.Getenv("DATA_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	return cfg
}

// UsuariosFile is the path of the users collection.
func (c Config) UsuariosFile() string {
	return filepath.Join(c.DataDir, "usuarios.json")
}

// SesionesFile is the path of the read-only catalog.
func (c Config) SesionesFile() string {
	return filepath.Join(c.DataDir, "sesiones.json")
}

// LogsFile is the path of the append-only audit log.
func (c Config) LogsFile() string {
	return filepath.Join(c.DataDir, "logs.txt")
}
