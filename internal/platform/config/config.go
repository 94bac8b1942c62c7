package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config captures process level configuration read from the environment.
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`

	RegistryDriver string `env:"REGISTRY_DRIVER" envDefault:"mysql"`
	RegistryDSN    string `env:"REGISTRY_DSN" envDefault:"root:root@tcp(localhost:3306)/volunteers?parseTime=true"`

	// Empty RedisAddr runs the reconciler without a cross-node lease.
	RedisAddr string `env:"REDIS_ADDR"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"volunteer.checkins"`

	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"5m"`
	ReconcileWorkers  int           `env:"RECONCILE_WORKERS" envDefault:"4"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
	EventWorkers      int           `env:"EVENT_WORKERS" envDefault:"2"`
	EventQueueSize    int           `env:"EVENT_QUEUE_SIZE" envDefault:"1000"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// FromEnv parses and validates Config from environment variables.
func FromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.RegistryDriver != DriverMySQL && c.RegistryDriver != DriverSQLite {
		errs = append(errs, fmt.Errorf("REGISTRY_DRIVER must be %q or %q, got %q", DriverMySQL, DriverSQLite, c.RegistryDriver))
	}
	if c.RegistryDSN == "" {
		errs = append(errs, errors.New("REGISTRY_DSN is required"))
	}
	if c.ReconcileInterval <= 0 {
		errs = append(errs, errors.New("RECONCILE_INTERVAL must be positive"))
	}
	if c.ReconcileWorkers < 1 {
		errs = append(errs, errors.New("RECONCILE_WORKERS must be at least 1"))
	}
	if c.WriteTimeout <= 0 {
		errs = append(errs, errors.New("WRITE_TIMEOUT must be positive"))
	}
	if c.EventWorkers < 1 {
		errs = append(errs, errors.New("EVENT_WORKERS must be at least 1"))
	}
	if c.EventQueueSize < 1 {
		errs = append(errs, errors.New("EVENT_QUEUE_SIZE must be at least 1"))
	}
	return errors.Join(errs...)
}
