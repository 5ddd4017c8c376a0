package content

import (
	"time"

	"trade-lab/domain"
)

// Order commits the buyer to the winning quote.
type Order struct {
	grouped
	traded
	quoteID               int64
	unitPrice             float64
	requestedDeliveryDate time.Time
}

// NewOrderBasedOnQuote builds an order from the selected quote, addressed
// to the quoting supplier.
func NewOrderBasedOnQuote(ids *domain.IDGenerator, now time.Time, quote *Quote) *Order {
	return &Order{
		grouped: grouped{
			base:       newBase(ids, KindOrder, quote.Receiver(), quote.Sender(), now),
			groupingID: quote.GroupingID(),
		},
		traded:                traded{product: quote.Product(), amount: quote.Amount()},
		quoteID:               quote.UniqueID(),
		unitPrice:             quote.UnitPrice(),
		requestedDeliveryDate: quote.ProposedDeliveryDate(),
	}
}

func (o *Order) QuoteID() int64                   { return o.quoteID }
func (o *Order) UnitPrice() float64               { return o.unitPrice }
func (o *Order) RequestedDeliveryDate() time.Time { return o.requestedDeliveryDate }

// OrderConfirmation accepts or rejects an order. A rejection makes the
// purchaser purge the grouping id and reopen the negotiation under a fresh
// demand.
type OrderConfirmation struct {
	grouped
	traded
	confirmed           bool
	plannedShipmentDate time.Time
}

func NewOrderConfirmation(ids *domain.IDGenerator, now time.Time, order *Order,
	confirmed bool, plannedShipment time.Time) *OrderConfirmation {
	return &OrderConfirmation{
		grouped: grouped{
			base:       newBase(ids, KindOrderConfirmation, order.Receiver(), order.Sender(), now),
			groupingID: order.GroupingID(),
		},
		traded:              traded{product: order.Product(), amount: order.Amount()},
		confirmed:           confirmed,
		plannedShipmentDate: plannedShipment,
	}
}

func (c *OrderConfirmation) Confirmed() bool                { return c.confirmed }
func (c *OrderConfirmation) PlannedShipmentDate() time.Time { return c.plannedShipmentDate }
