package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"playmaker"`
	HTTPPort    string `env:"HTTP_PORT" env-default:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	// SeedDemoData enables the in-memory runtime seed when no
	// Postgres DSN is configured.
	SeedDemoData bool `env:"SEED_DEMO_DATA" env-default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}
