// Package observability aggregates run metrics from content-sent events.
// It only observes: nothing in here feeds back into the simulation.
package observability

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"trade-lab/content"
	"trade-lab/contract"
)

// MonitoringStats is a snapshot of the counters for reporting.
type MonitoringStats struct {
	TotalSent uint64
	ByKind    map[content.Kind]uint64
}

// MonitoringManager counts sent content by kind and mirrors the counts
// into prometheus. It implements contract.ContentSink. The mutex is for
// readers outside the simulation loop (the debug server); the simulation
// itself is single-threaded.
type MonitoringManager struct {
	log       *slog.Logger
	mu        sync.RWMutex
	totalSent uint64
	byKind    map[content.Kind]uint64

	sentCounter *prometheus.CounterVec
}

func NewMonitoringManager(log *slog.Logger, reg prometheus.Registerer) *MonitoringManager {
	mm := &MonitoringManager{
		log:    log,
		byKind: make(map[content.Kind]uint64),
		sentCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tradelab_content_sent_total",
			Help: "Content items sent, by kind.",
		}, []string{"kind"}),
	}
	if reg != nil {
		if err := reg.Register(mm.sentCounter); err != nil {
			log.Warn("prometheus registration failed", "error", err)
		}
	}
	return mm
}

// Consume implements contract.ContentSink.
func (mm *MonitoringManager) Consume(e contract.SentContent) error {
	mm.mu.Lock()
	mm.totalSent++
	mm.byKind[e.Content.Kind()]++
	mm.mu.Unlock()

	mm.sentCounter.WithLabelValues(string(e.Content.Kind())).Inc()
	return nil
}

// GetLatest returns a copy of the current counters.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	byKind := make(map[content.Kind]uint64, len(mm.byKind))
	for k, v := range mm.byKind {
		byKind[k] = v
	}
	return MonitoringStats{TotalSent: mm.totalSent, ByKind: byKind}
}
