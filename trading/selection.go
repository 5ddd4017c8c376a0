// Package trading implements the negotiation protocol as content handlers:
// purchasing fans demands out to requests for quote, collects and selects
// quotes, orders and restocks; selling quotes, confirms, ships and
// invoices; financing settles invoices; banking registers transfers.
// All waiting is expressed as scheduled callbacks guarded by store state,
// never as blocking.
package trading

import (
	"math"
	"time"

	"github.com/samber/lo"

	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/domain"
)

// Criterion is one axis of the quote ranking.
type Criterion string

const (
	CriterionPrice        Criterion = "PRICE"
	CriterionDeliveryDate Criterion = "DELIVERY_DATE"
	CriterionDistance     Criterion = "DISTANCE"
)

// SelectionConfig controls quote filtering and ranking. The order of
// Criteria is the lexicographic order of the comparison; any permutation
// of the three criteria is valid.
type SelectionConfig struct {
	MaxPriceMargin  float64
	MinAmountMargin float64
	Criteria        []Criterion
}

// DefaultCriteria ranks by price, then delivery date, then seller
// distance.
func DefaultCriteria() []Criterion {
	return []Criterion{CriterionPrice, CriterionDeliveryDate, CriterionDistance}
}

// SelectBestQuote filters the quotes against the request and picks the
// minimum under the configured criteria order. Deterministic and
// idempotent: ties fall back to the lower unique id. Returns nil when no
// quote survives, in which case no order is placed.
func SelectBestQuote(now time.Time, buyer domain.Location, locator contract.Locator,
	quotes []*content.Quote, rfq *content.RequestForQuote, cfg SelectionConfig) *content.Quote {
	maxUnitPrice := rfq.Product().MarketUnitPrice * (1 + cfg.MaxPriceMargin)
	requested := rfq.Amount()

	survivors := lo.Filter(quotes, func(q *content.Quote, _ int) bool {
		if !q.ValidUntil().After(now) {
			return false
		}
		if q.UnitPrice() > maxUnitPrice {
			return false
		}
		if q.Amount() > requested || q.Amount() <= 0 {
			return false
		}
		if float64(requested)/float64(q.Amount()) > 1+cfg.MinAmountMargin {
			return false
		}
		return !q.ProposedDeliveryDate().After(rfq.LatestDeliveryDate())
	})
	if len(survivors) == 0 {
		return nil
	}

	criteria := cfg.Criteria
	if len(criteria) == 0 {
		criteria = DefaultCriteria()
	}

	best := survivors[0]
	for _, q := range survivors[1:] {
		if compareQuotes(q, best, criteria, buyer, locator) < 0 {
			best = q
		}
	}
	return best
}

// compareQuotes orders two quotes under the criteria chain, with the
// unique id as final tie-break so the total order is strict.
func compareQuotes(a, b *content.Quote, criteria []Criterion,
	buyer domain.Location, locator contract.Locator) int {
	for _, criterion := range criteria {
		var av, bv float64
		switch criterion {
		case CriterionPrice:
			av, bv = a.UnitPrice(), b.UnitPrice()
		case CriterionDeliveryDate:
			av = float64(a.ProposedDeliveryDate().UnixNano())
			bv = float64(b.ProposedDeliveryDate().UnixNano())
		case CriterionDistance:
			av = sellerDistance(a, buyer, locator)
			bv = sellerDistance(b, buyer, locator)
		}
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	if a.UniqueID() < b.UniqueID() {
		return -1
	}
	return 1
}

// sellerDistance ranks unknown seller locations last.
func sellerDistance(q *content.Quote, buyer domain.Location, locator contract.Locator) float64 {
	loc, ok := locator.LocationOf(q.Sender())
	if !ok {
		return math.Inf(1)
	}
	return buyer.DistanceTo(loc)
}
