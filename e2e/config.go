package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ScenarioPath string `envconfig:"E2E_SCENARIO_PATH" default:"../scenarios/default.yaml"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours  bool   `envconfig:"E2E_COLOURS" default:"true"`
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"error"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
