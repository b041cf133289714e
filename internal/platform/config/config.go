// Package config loads the service configuration with koanf and validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultServerPort     = 3000
	DefaultMaxRequestSize = 1 << 20

	// DefaultNotFoundStatus is the status used when a quote does not exist.
	// Existing clients expect 200 with an error body.
	DefaultNotFoundStatus = 200

	// DefaultRequestTimeout bounds every /api request.
	DefaultRequestTimeout = 30 * time.Second

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

// Config is the root of the configuration tree. Keys are the koanf tags
// joined with dots, e.g. api.not_found_status.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	API       APIConfig       `koanf:"api"       validate:"required"`
	Web       WebConfig       `koanf:"web"`
}

// AppConfig identifies the deployment.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig tunes the HTTP listener.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig selects the log level and terminal format.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig enables an additional rotating JSON log file.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig configures the OTLP exporters.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// APIConfig tunes the /api/quotes endpoints.
type APIConfig struct {
	// NotFoundStatus is returned with {"error":"Не найдено"} when a quote
	// does not exist. Only 200 and 404 are accepted.
	NotFoundStatus int           `koanf:"not_found_status" validate:"required,oneof=200 404"`
	RequestTimeout time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
}

// WebConfig controls the static page.
type WebConfig struct {
	// Dir serves static files from disk instead of the embedded bundle.
	Dir string `koanf:"dir" validate:"omitempty,dir"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quote-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quote-service",
		"telemetry.sampling_rate": 1.0,

		"api.not_found_status": DefaultNotFoundStatus,
		"api.request_timeout":  "30s",

		"web.dir": "",
	}
}

// DefaultDir is where Load looks for base.yaml and the profile files.
const DefaultDir = "configs"

// Load reads configuration from DefaultDir. See LoadDir.
func Load(profile string) (*Config, error) {
	return LoadDir(DefaultDir, profile)
}

// LoadDir layers configuration sources, later ones winning:
// built-in defaults, dir/base.yaml, dir/{profile}.yaml, then APP_* variables.
// Missing files are skipped.
func LoadDir(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	files := []string{filepath.Join(dir, "base.yaml")}
	if profile != "" {
		files = append(files, filepath.Join(dir, profile+".yaml"))
	}

	for _, path := range files {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("APP_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeys maps APP_ variable suffixes to config keys, so that keys which
// contain underscores (APP_API_NOT_FOUND_STATUS) resolve correctly.
var envKeys = func() map[string]string {
	m := make(map[string]string)
	for key := range defaults() {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}

	return m
}()

// envKey converts APP_SERVER_PORT to server.port.
func envKey(s string) string {
	name := strings.ToLower(strings.TrimPrefix(s, "APP_"))
	if key, ok := envKeys[name]; ok {
		return key
	}

	return strings.ReplaceAll(name, "_", ".")
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
