package config

import (
	"errors"
	"os"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/dataset"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DatasetURL      string
	DatasetTimeout  time.Duration
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Layout overrides; LayoutFile is empty when the defaults are used.
	LayoutFile string
	Layout     layout.Layout

	// Optional cell export, enabled when KAFKA_BROKERS is set.
	KafkaBrokers   []string
	KafkaCellTopic string
	ExportEnabled  bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	datasetTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("DATASET_TIMEOUT", "0s"))
	if err != nil || datasetTimeout < 0 {
		return nil, errors.New("invalid DATASET_TIMEOUT")
	}

	layoutFile := os.Getenv("LAYOUT_FILE")
	l, err := layout.Load(layoutFile)
	if err != nil {
		return nil, err
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}

	cfg := &Config{
		DatasetURL:      sharedcfg.EnvOrDefault("DATASET_URL", dataset.DefaultURL),
		DatasetTimeout:  datasetTimeout,
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		LayoutFile: layoutFile,
		Layout:     l,

		KafkaBrokers:   brokers,
		KafkaCellTopic: sharedcfg.EnvOrDefault("KAFKA_CELL_TOPIC", "heatmap-cells"),
		ExportEnabled:  len(brokers) > 0,
	}

	if cfg.DatasetURL == "" {
		return nil, errors.New("DATASET_URL is required")
	}
	if cfg.ExportEnabled && cfg.KafkaCellTopic == "" {
		return nil, errors.New("KAFKA_CELL_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}
