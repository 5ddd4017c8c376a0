package content

import (
	"time"

	"trade-lab/domain"
)

// Quote is a supplier's offer in response to a request for quote.
// The offered amount may be lower than the requested one; the buyer's
// selection filters decide whether that is acceptable.
type Quote struct {
	grouped
	traded
	unitPrice            float64
	proposedDeliveryDate time.Time
	validUntil           time.Time
}

func NewQuote(ids *domain.IDGenerator, now time.Time, rfq *RequestForQuote,
	unitPrice float64, offered domain.Amount, proposedDelivery, validUntil time.Time) *Quote {
	return &Quote{
		grouped: grouped{
			base:       newBase(ids, KindQuote, rfq.Receiver(), rfq.Sender(), now),
			groupingID: rfq.GroupingID(),
		},
		traded:               traded{product: rfq.Product(), amount: offered},
		unitPrice:            unitPrice,
		proposedDeliveryDate: proposedDelivery,
		validUntil:           validUntil,
	}
}

func (q *Quote) UnitPrice() float64              { return q.unitPrice }
func (q *Quote) ProposedDeliveryDate() time.Time { return q.proposedDeliveryDate }
func (q *Quote) ValidUntil() time.Time           { return q.validUntil }

// QuoteNo is an explicit decline. It is recorded and counted toward "all
// suppliers answered" but never acted upon; the originating RFQ simply
// expires via its own cutoff.
type QuoteNo struct {
	grouped
	traded
	reason string
}

func NewQuoteNo(ids *domain.IDGenerator, now time.Time, rfq *RequestForQuote, reason string) *QuoteNo {
	return &QuoteNo{
		grouped: grouped{
			base:       newBase(ids, KindQuoteNo, rfq.Receiver(), rfq.Sender(), now),
			groupingID: rfq.GroupingID(),
		},
		traded: traded{product: rfq.Product(), amount: rfq.Amount()},
		reason: reason,
	}
}

func (q *QuoteNo) Reason() string { return q.reason }
