package internal

import "time"

// Config is the environment-driven configuration shared by the binaries.
type Config struct {
	LogLevel     string `env:"LOG_LEVEL,default=info"`
	ScenarioPath string `env:"SCENARIO_PATH,required=true"`
	// DebugAddr enables the debug/metrics HTTP server when non-empty.
	DebugAddr string `env:"DEBUG_ADDR"`
	// KeepAlive keeps the process (and the debug server) up after the
	// run finishes.
	KeepAlive bool `env:"KEEP_ALIVE,default=false"`
	// ReportLimit caps the number of negotiations in the final table.
	ReportLimit int           `env:"REPORT_LIMIT,default=50"`
	RunTimeout  time.Duration `env:"RUN_TIMEOUT,default=1m"`
}
