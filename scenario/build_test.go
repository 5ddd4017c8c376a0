package scenario

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/errors"
	"trade-lab/projection"
)

var start = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// baseSpec is a one-buyer one-seller world with a bank, ready to run.
func baseSpec() *Spec {
	return &Spec{
		Start:    start,
		Duration: Duration(720 * time.Hour),
		Policy: PolicySpec{
			Waiting:         WaitingTimeout,
			Criteria:        []string{"price", "delivery", "distance"},
			MaxPriceMargin:  0.25,
			MinAmountMargin: 0.1,
		},
		Transport: TransportSpec{Carrier: "RoadFreight", Speed: 60, CostPerDistance: 1.5, MaxRange: 800},
		Defaults: DefaultsSpec{
			QuoteDeadline:    Duration(24 * time.Hour),
			DeliveryLeadTime: Duration(240 * time.Hour),
			SendDelay:        Duration(time.Hour),
			ReceiverDelay:    Duration(30 * time.Minute),
			HandlingTime:     Duration(48 * time.Hour),
			QuoteValidity:    Duration(96 * time.Hour),
			PaymentTerm:      Duration(336 * time.Hour),
			SettleDelay:      Duration(72 * time.Hour),
			RestockInterval:  Duration(24 * time.Hour),
			PriceFactor:      1.1,
		},
		Products: []ProductSpec{
			{ID: "cement-42n", Name: "Portland Cement 42.5N", Unit: "t", MarketUnitPrice: 95},
		},
		Actors: []ActorSpec{
			{Name: "CentralBank", Bank: true},
			{Name: "NorthWorks", Location: LocationSpec{X: 120, Y: 340},
				Sells: &SellingSpec{Stock: map[string]int64{"cement-42n": 5000}}},
			{Name: "CityWholesale", Location: LocationSpec{X: 60, Y: 45},
				Buys: &BuyingSpec{Suppliers: []string{"NorthWorks"}}},
		},
		Demands: []DemandSpec{
			{At: Duration(2 * time.Hour), Buyer: "CityWholesale", Product: "cement-42n", Amount: 400},
		},
	}
}

func TestBuild_And_Run_Settles_The_Scripted_Demand(t *testing.T) {
	req := require.New(t)
	built, err := Build(testLogger(), baseSpec())
	req.NoError(err)

	ledger := projection.NewLedger()
	built.Model.AddSink(ledger)

	req.NoError(built.Model.Run(context.Background(), built.Horizon))

	// Then the single negotiation settled
	negotiations := ledger.Negotiations()
	req.Len(negotiations, 1)
	n := negotiations[0]
	req.Equal(projection.OutcomeSettled, n.Outcome())
	req.Equal("cement-42n", n.Product)

	// And the bank holds the money trail
	seller := built.ActorsByName["NorthWorks"]
	buyer := built.ActorsByName["CityWholesale"]
	req.NotNil(built.Banking)
	req.Positive(built.Banking.Balance(seller.ID))
	req.Negative(built.Banking.Balance(buyer.ID))
	req.Equal(built.Banking.Balance(seller.ID), -built.Banking.Balance(buyer.ID))
}

func TestBuild_Uses_The_Default_Price_Factor_When_Unset(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()

	built, err := Build(testLogger(), spec)
	req.NoError(err)

	sink := &quoteSink{}
	built.Model.AddSink(sink)
	req.NoError(built.Model.Run(context.Background(), built.Horizon))

	// Then the quote price reflects the defaults section's factor plus
	// freight spread over the offered amount
	req.Len(sink.quotes, 1)
	req.Greater(sink.quotes[0].UnitPrice(), 95*1.1)
	req.Less(sink.quotes[0].UnitPrice(), 95*1.25)
}

type quoteSink struct {
	quotes []*content.Quote
}

func (s *quoteSink) Consume(e contract.SentContent) error {
	if q, ok := e.Content.(*content.Quote); ok {
		s.quotes = append(s.quotes, q)
	}
	return nil
}

func TestBuild_Rejects_An_Unknown_Supplier(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()
	spec.Actors[2].Buys.Suppliers = []string{"NowhereWorks"}

	_, err := Build(testLogger(), spec)

	req.ErrorIs(err, errors.ErrInvalidScenario)
}

func TestBuild_Rejects_An_Unknown_Stocked_Product(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()
	spec.Actors[1].Sells.Stock = map[string]int64{"unobtainium": 5}

	_, err := Build(testLogger(), spec)

	req.ErrorIs(err, errors.ErrUnknownProduct)
}

func TestBuild_Rejects_A_Second_Bank(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()
	spec.Actors = append(spec.Actors, ActorSpec{Name: "ShadowBank", Bank: true})

	_, err := Build(testLogger(), spec)

	req.ErrorIs(err, errors.ErrInvalidScenario)
}

func TestBuild_Rejects_A_Duplicate_Actor_Name(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()
	spec.Actors = append(spec.Actors, ActorSpec{Name: "NorthWorks"})

	_, err := Build(testLogger(), spec)

	req.ErrorIs(err, errors.ErrInvalidScenario)
}

func TestBuild_Rejects_An_Unknown_Criterion(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()
	spec.Policy.Criteria = []string{"vibes"}

	_, err := Build(testLogger(), spec)

	req.ErrorIs(err, errors.ErrInvalidScenario)
}

func TestBuild_Rejects_A_Demand_For_An_Unknown_Buyer(t *testing.T) {
	req := require.New(t)
	spec := baseSpec()
	spec.Demands[0].Buyer = "Nobody"

	_, err := Build(testLogger(), spec)

	req.ErrorIs(err, errors.ErrInvalidScenario)
}
