package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"APP_ENV" env-default:"local"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"freelancetrack.db"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	} `yaml:"log"`

	Server struct {
		Port         int `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
		ReadTimeout  int `yaml:"read_timeout" env-default:"15"`  // seconds
		WriteTimeout int `yaml:"write_timeout" env-default:"15"` // seconds
		IdleTimeout  int `yaml:"idle_timeout" env-default:"60"`  // seconds
	} `yaml:"server"`

	Timer struct {
		TickInterval int `yaml:"tick_interval" env-default:"1"` // seconds
	} `yaml:"timer"`

	Deadline struct {
		ScanInterval int  `yaml:"scan_interval" env:"DEADLINE_SCAN_INTERVAL" env-default:"3600"` // seconds
		WarnWindow   int  `yaml:"warn_window" env-default:"24"`                                  // hours
		Dedup        bool `yaml:"dedup" env-default:"true"`
	} `yaml:"deadline"`
}

// LoadConfig reads configuration from a YAML file with environment overrides.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return &cfg, nil
}
