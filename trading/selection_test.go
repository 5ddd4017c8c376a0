package trading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trade-lab/content"
	"trade-lab/domain"
	"trade-lab/mocks"
)

var start = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

func cement() domain.Product {
	return domain.Product{ID: "cement-42n", Name: "Cement", Unit: "t", MarketUnitPrice: 95}
}

type quoteParams struct {
	price    float64
	amount   domain.Amount
	delivery time.Time
	valid    time.Time
}

// solicitation builds the RFQ the quotes under test answer.
func solicitation(ids *domain.IDGenerator, buyer, supplier domain.ActorID) *content.RequestForQuote {
	demand := content.NewDemand(ids, start, buyer, buyer, cement(), 100, start.Add(240*time.Hour))
	return content.NewRequestForQuote(ids, start, buyer, demand, supplier, start.Add(24*time.Hour))
}

func makeQuotes(ids *domain.IDGenerator, rfq *content.RequestForQuote, params []quoteParams) []*content.Quote {
	quotes := make([]*content.Quote, 0, len(params))
	for _, p := range params {
		quotes = append(quotes, content.NewQuote(ids, start, rfq, p.price, p.amount, p.delivery, p.valid))
	}
	return quotes
}

func anywhereLocator(t *testing.T) *mocks.MockLocator {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockLocator(ctrl)
	locator.EXPECT().LocationOf(gomock.Any()).Return(domain.Location{}, true).AnyTimes()
	return locator
}

func TestSelectBestQuote_Picks_The_Lowest_Price_First(t *testing.T) {
	req := require.New(t)
	ids := domain.NewIDGenerator()
	rfq := solicitation(ids, domain.NewActorID(), domain.NewActorID())

	delivery := start.Add(48 * time.Hour)
	valid := start.Add(96 * time.Hour)
	quotes := makeQuotes(ids, rfq, []quoteParams{
		{price: 100, amount: 100, delivery: delivery, valid: valid},
		{price: 90, amount: 100, delivery: delivery, valid: valid},
		{price: 95, amount: 100, delivery: delivery, valid: valid},
	})

	best := SelectBestQuote(start, domain.Location{}, anywhereLocator(t), quotes, rfq, SelectionConfig{
		MaxPriceMargin: 0.25,
	})

	req.NotNil(best)
	req.Equal(90.0, best.UnitPrice())
}

func TestSelectBestQuote_Is_Deterministic_On_Full_Ties(t *testing.T) {
	req := require.New(t)
	ids := domain.NewIDGenerator()
	rfq := solicitation(ids, domain.NewActorID(), domain.NewActorID())
	locator := anywhereLocator(t)

	delivery := start.Add(48 * time.Hour)
	valid := start.Add(96 * time.Hour)
	quotes := makeQuotes(ids, rfq, []quoteParams{
		{price: 90, amount: 100, delivery: delivery, valid: valid},
		{price: 90, amount: 100, delivery: delivery, valid: valid},
	})

	// When every criterion ties, the lower unique id wins, every time
	first := SelectBestQuote(start, domain.Location{}, locator, quotes, rfq, SelectionConfig{MaxPriceMargin: 0.25})
	reversed := []*content.Quote{quotes[1], quotes[0]}
	second := SelectBestQuote(start, domain.Location{}, locator, reversed, rfq, SelectionConfig{MaxPriceMargin: 0.25})

	req.Equal(quotes[0].UniqueID(), first.UniqueID())
	req.Equal(first.UniqueID(), second.UniqueID())
}

func TestSelectBestQuote_Filters_Out_Unacceptable_Quotes(t *testing.T) {
	req := require.New(t)
	ids := domain.NewIDGenerator()
	rfq := solicitation(ids, domain.NewActorID(), domain.NewActorID())
	locator := anywhereLocator(t)

	delivery := start.Add(48 * time.Hour)
	valid := start.Add(96 * time.Hour)
	cfg := SelectionConfig{MaxPriceMargin: 0.25, MinAmountMargin: 0.1}

	// expired validity
	expired := makeQuotes(ids, rfq, []quoteParams{{price: 90, amount: 100, delivery: delivery, valid: start}})
	req.Nil(SelectBestQuote(start, domain.Location{}, locator, expired, rfq, cfg))

	// price above market plus margin
	tooExpensive := makeQuotes(ids, rfq, []quoteParams{{price: 95 * 1.3, amount: 100, delivery: delivery, valid: valid}})
	req.Nil(SelectBestQuote(start, domain.Location{}, locator, tooExpensive, rfq, cfg))

	// offered amount above the requested one
	overOffer := makeQuotes(ids, rfq, []quoteParams{{price: 90, amount: 150, delivery: delivery, valid: valid}})
	req.Nil(SelectBestQuote(start, domain.Location{}, locator, overOffer, rfq, cfg))

	// partial coverage below the amount margin: 100/80 > 1.1
	tooPartial := makeQuotes(ids, rfq, []quoteParams{{price: 90, amount: 80, delivery: delivery, valid: valid}})
	req.Nil(SelectBestQuote(start, domain.Location{}, locator, tooPartial, rfq, cfg))

	// delivery after the latest acceptable date
	tooLate := makeQuotes(ids, rfq, []quoteParams{{price: 90, amount: 100, delivery: start.Add(300 * time.Hour), valid: valid}})
	req.Nil(SelectBestQuote(start, domain.Location{}, locator, tooLate, rfq, cfg))

	// acceptable partial coverage survives: 100/95 <= 1.1
	partial := makeQuotes(ids, rfq, []quoteParams{{price: 90, amount: 95, delivery: delivery, valid: valid}})
	req.NotNil(SelectBestQuote(start, domain.Location{}, locator, partial, rfq, cfg))
}

func TestSelectBestQuote_Ranks_By_Delivery_When_Configured(t *testing.T) {
	req := require.New(t)
	ids := domain.NewIDGenerator()
	rfq := solicitation(ids, domain.NewActorID(), domain.NewActorID())

	valid := start.Add(96 * time.Hour)
	quotes := makeQuotes(ids, rfq, []quoteParams{
		{price: 90, amount: 100, delivery: start.Add(72 * time.Hour), valid: valid},
		{price: 100, amount: 100, delivery: start.Add(24 * time.Hour), valid: valid},
	})

	best := SelectBestQuote(start, domain.Location{}, anywhereLocator(t), quotes, rfq, SelectionConfig{
		MaxPriceMargin: 0.25,
		Criteria:       []Criterion{CriterionDeliveryDate, CriterionPrice, CriterionDistance},
	})

	req.Equal(start.Add(24*time.Hour), best.ProposedDeliveryDate())
}

func TestSelectBestQuote_Ranks_Unknown_Seller_Locations_Last(t *testing.T) {
	req := require.New(t)
	ids := domain.NewIDGenerator()
	buyer := domain.NewActorID()
	near := domain.NewActorID()
	unknown := domain.NewActorID()

	demand := content.NewDemand(ids, start, buyer, buyer, cement(), 100, start.Add(240*time.Hour))
	rfqNear := content.NewRequestForQuote(ids, start, buyer, demand, near, start.Add(24*time.Hour))
	rfqUnknown := content.NewRequestForQuote(ids, start, buyer, demand, unknown, start.Add(24*time.Hour))

	delivery := start.Add(48 * time.Hour)
	valid := start.Add(96 * time.Hour)
	quoteNear := content.NewQuote(ids, start, rfqNear, 90, 100, delivery, valid)
	quoteUnknown := content.NewQuote(ids, start, rfqUnknown, 90, 100, delivery, valid)

	ctrl := gomock.NewController(t)
	locator := mocks.NewMockLocator(ctrl)
	locator.EXPECT().LocationOf(near).Return(domain.Location{X: 10}, true).AnyTimes()
	locator.EXPECT().LocationOf(unknown).Return(domain.Location{}, false).AnyTimes()

	best := SelectBestQuote(start, domain.Location{}, locator,
		[]*content.Quote{quoteUnknown, quoteNear}, rfqNear, SelectionConfig{
			MaxPriceMargin: 0.25,
			Criteria:       []Criterion{CriterionDistance, CriterionPrice, CriterionDeliveryDate},
		})

	req.Equal(near, best.Sender())
}
