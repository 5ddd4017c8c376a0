package content

import (
	"time"

	"trade-lab/domain"
)

// Demand opens a negotiation chain. It is the only message that mints a
// grouping id; everything downstream propagates it unchanged.
type Demand struct {
	grouped
	traded
	latestDeliveryDate time.Time
}

func NewDemand(ids *domain.IDGenerator, now time.Time, sender, receiver domain.ActorID,
	product domain.Product, amount domain.Amount, latestDelivery time.Time) *Demand {
	return &Demand{
		grouped: grouped{
			base:       newBase(ids, KindDemand, sender, receiver, now),
			groupingID: ids.NextGroupingID(),
		},
		traded:             traded{product: product, amount: amount},
		latestDeliveryDate: latestDelivery,
	}
}

// Reissue builds a fresh demand with identical product, amount and delivery
// parameters under a new grouping id. Used when a negotiation is rejected
// and restarted from scratch.
func (d *Demand) Reissue(ids *domain.IDGenerator, now time.Time) *Demand {
	return NewDemand(ids, now, d.sender, d.receiver, d.product, d.amount, d.latestDeliveryDate)
}

func (d *Demand) LatestDeliveryDate() time.Time { return d.latestDeliveryDate }

// RequestForQuote solicits a price and availability offer from one supplier.
// A demand fans out to one RFQ per candidate supplier under the same
// grouping id.
type RequestForQuote struct {
	grouped
	traded
	cutoffDate         time.Time
	latestDeliveryDate time.Time
}

func NewRequestForQuote(ids *domain.IDGenerator, now time.Time, sender domain.ActorID,
	demand *Demand, supplier domain.ActorID, cutoff time.Time) *RequestForQuote {
	return &RequestForQuote{
		grouped: grouped{
			base:       newBase(ids, KindRequestForQuote, sender, supplier, now),
			groupingID: demand.GroupingID(),
		},
		traded:             traded{product: demand.Product(), amount: demand.Amount()},
		cutoffDate:         cutoff,
		latestDeliveryDate: demand.LatestDeliveryDate(),
	}
}

// CutoffDate is the moment the buyer stops waiting for quotes.
func (r *RequestForQuote) CutoffDate() time.Time { return r.cutoffDate }

func (r *RequestForQuote) LatestDeliveryDate() time.Time { return r.latestDeliveryDate }
