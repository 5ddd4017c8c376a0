package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trade-lab/projection"
)

type StatsProvider func() map[string]any

type ledgerRow struct {
	GroupingID int64  `json:"grouping_id"`
	Product    string `json:"product"`
	Amount     int64  `json:"amount"`
	Outcome    string `json:"outcome"`
	Stages     int    `json:"stages"`
	OpenedAt   string `json:"opened_at"`
	Duration   string `json:"duration"`
}

// StartDebugServer exposes prometheus metrics, the negotiation ledger and
// arbitrary run stats over HTTP for inspection during or after a run.
func StartDebugServer(log *slog.Logger, addr string, ledger *projection.Ledger, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/ledger", func(w http.ResponseWriter, r *http.Request) {
		rows := make([]ledgerRow, 0)
		for _, n := range ledger.Negotiations() {
			rows = append(rows, ledgerRow{
				GroupingID: n.GroupingID,
				Product:    n.Product,
				Amount:     n.Amount,
				Outcome:    string(n.Outcome()),
				Stages:     len(n.Stages),
				OpenedAt:   n.OpenedAt.Format(time.RFC3339),
				Duration:   n.Duration().String(),
			})
		}
		writeJSON(w, rows)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		stats := map[string]any{}
		if statsProvider != nil {
			stats = statsProvider()
		}
		writeJSON(w, stats)
	})

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("debug server stopped", "error", err)
		}
	}()
	log.Info("debug server listening", "addr", addr)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
