package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trade-lab/errors"
)

const validScenario = `
start: 2026-01-05T08:00:00Z
duration: 720h

policy:
  waiting: timeout
  criteria: [price, delivery, distance]
  max_price_margin: 0.25
  min_amount_margin: 0.1

transport:
  carrier: RoadFreight
  speed: 60
  cost_per_distance: 1.5
  max_range: 800

defaults:
  quote_deadline: 24h
  delivery_lead_time: 240h
  send_delay: 1h
  receiver_delay: 30m
  handling_time: 48h
  quote_validity: 96h
  payment_term: 336h
  settle_delay: 72h
  restock_interval: 24h
  price_factor: 1.1

products:
  - id: cement-42n
    name: Portland Cement 42.5N
    unit: t
    market_unit_price: 95.0

actors:
  - name: CentralBank
    bank: true
  - name: NorthWorks
    location: { x: 120, y: 340 }
    sells:
      stock:
        cement-42n: 5000
  - name: CityWholesale
    location: { x: 60, y: 45 }
    buys:
      suppliers: [NorthWorks]

demands:
  - at: 2h
    buyer: CityWholesale
    product: cement-42n
    amount: 400
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Parses_A_Valid_Scenario(t *testing.T) {
	req := require.New(t)

	spec, err := Load(writeScenario(t, validScenario))

	req.NoError(err)
	req.Equal(time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC), spec.Start)
	req.Equal(720*time.Hour, spec.Duration.Std())
	req.Equal(WaitingTimeout, spec.Policy.Waiting)
	req.Equal(24*time.Hour, spec.Defaults.QuoteDeadline.Std())
	req.Equal(30*time.Minute, spec.Defaults.ReceiverDelay.Std())
	req.Len(spec.Actors, 3)
	req.True(spec.Actors[0].Bank)
	req.Equal(int64(5000), spec.Actors[1].Sells.Stock["cement-42n"])
	req.Equal([]string{"NorthWorks"}, spec.Actors[2].Buys.Suppliers)
	req.Equal(2*time.Hour, spec.Demands[0].At.Std())
}

func TestLoad_Rejects_A_Malformed_Duration(t *testing.T) {
	req := require.New(t)
	body := `
start: 2026-01-05T08:00:00Z
duration: soon
`
	_, err := Load(writeScenario(t, body))

	req.Error(err)
	req.Contains(err.Error(), "soon")
}

func TestLoad_Rejects_An_Unknown_Waiting_Policy(t *testing.T) {
	req := require.New(t)
	body := strings.Replace(validScenario, "waiting: timeout", "waiting: forever", 1)

	_, err := Load(writeScenario(t, body))

	req.ErrorIs(err, errors.ErrInvalidScenario)
}

func TestLoad_Requires_Products(t *testing.T) {
	req := require.New(t)
	body := strings.Replace(validScenario, "products:", "ignored:", 1)

	_, err := Load(writeScenario(t, body))

	req.ErrorIs(err, errors.ErrInvalidScenario)
}

func TestLoad_Fails_On_A_Missing_File(t *testing.T) {
	req := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	req.Error(err)
}
