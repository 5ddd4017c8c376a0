package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"

	"trade-lab/internal"
	"trade-lab/observability"
	"trade-lab/projection"
	"trade-lab/scenario"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so that
// deferred cleanup executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Scenario
	spec, err := scenario.Load(config.ScenarioPath)
	if err != nil {
		return fmt.Errorf("scenario loading failed: %w", err)
	}
	built, err := scenario.Build(log, spec)
	if err != nil {
		return fmt.Errorf("scenario wiring failed: %w", err)
	}

	// 3. Observability sinks
	monitoring := observability.NewMonitoringManager(log, prometheus.DefaultRegisterer)
	ledger := projection.NewLedger()
	built.Model.AddSink(monitoring, ledger)

	if config.DebugAddr != "" {
		internal.StartDebugServer(log, config.DebugAddr, ledger, func() map[string]any {
			stats := monitoring.GetLatest()
			return map[string]any{
				"now":        built.Model.Now().UTC(),
				"horizon":    built.Horizon.UTC(),
				"total_sent": stats.TotalSent,
				"by_kind":    stats.ByKind,
			}
		})
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithTimeout(ctx, config.RunTimeout)
	defer cancel()

	// 5. Run the simulation to the horizon
	log.Info("Starting simulation",
		"start", spec.Start.UTC(), "horizon", built.Horizon.UTC(),
		"actors", len(built.ActorsByName))
	if err = built.Model.Run(runCtx, built.Horizon); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	// 6. Final report
	printReport(built, monitoring, ledger, config.ReportLimit)

	if config.KeepAlive {
		log.Info("Run finished, staying up (KEEP_ALIVE)")
		<-ctx.Done()
	}
	log.Info("Program stopped cleanly")
	return nil
}
