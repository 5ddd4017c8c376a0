// Package content defines the immutable, typed messages actors exchange.
// Every message carries sender, receiver, a creation timestamp and a unique
// id; negotiation messages additionally carry the grouping id that ties a
// demand to everything it triggered. Values are never mutated after
// construction, so they can be stored and fanned out freely.
package content

import (
	"time"

	"trade-lab/domain"
)

// Kind tags the concrete type of a content value. Handler tables are keyed
// by kind, which keeps dispatch a map lookup instead of type reflection.
type Kind string

const (
	KindDemand            Kind = "DEMAND"
	KindRequestForQuote   Kind = "REQUEST_FOR_QUOTE"
	KindQuote             Kind = "QUOTE"
	KindQuoteNo           Kind = "QUOTE_NO"
	KindOrder             Kind = "ORDER"
	KindOrderConfirmation Kind = "ORDER_CONFIRMATION"
	KindShipment          Kind = "SHIPMENT"
	KindInvoice           Kind = "INVOICE"
	KindPayment           Kind = "PAYMENT"
	KindBankTransfer      Kind = "BANK_TRANSFER"
)

// Content is the capability every message implements.
// Equality is identity based: two contents are the same iff their unique
// ids are equal.
type Content interface {
	UniqueID() int64
	Kind() Kind
	Sender() domain.ActorID
	Receiver() domain.ActorID
	CreatedAt() time.Time
}

// GroupedContent correlates every message of one negotiation chain.
type GroupedContent interface {
	Content
	GroupingID() int64
}

// ProductContent carries a product and a quantity. Orthogonal to
// GroupedContent; most trade messages implement both.
type ProductContent interface {
	Content
	Product() domain.Product
	Amount() domain.Amount
}
