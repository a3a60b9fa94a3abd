package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBConnectionString string `envconfig:"DB_CONNECTION_STRING" required:"true"`
	Environment        string `envconfig:"ENV" default:"development"`
	Port               string `envconfig:"PORT" default:"8080"`

	// ReminderInterval is the reminder poll cadence; the fire window is
	// sized to it, so shrinking it tightens reminder granularity.
	ReminderInterval time.Duration `envconfig:"REMINDER_INTERVAL" default:"60s"`

	// CourseCacheTTL bounds staleness of the course list cache. Writes
	// invalidate the cache regardless. Zero disables caching.
	CourseCacheTTL time.Duration `envconfig:"COURSE_CACHE_TTL" default:"300s"`

	ExportDir string `envconfig:"EXPORT_DIR" default:"exports"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
