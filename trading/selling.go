package trading

import (
	"log/slog"
	"time"

	"trade-lab/actor"
	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/domain"
)

type SellingConfig struct {
	// PriceFactor multiplies the product's market unit price.
	PriceFactor float64
	// HandlingTime separates order confirmation from shipment dispatch.
	HandlingTime time.Duration
	// QuoteValidity is the window a quote stays selectable.
	QuoteValidity time.Duration
	// PaymentTerm sets the invoice due date relative to shipping.
	PaymentTerm time.Duration
	SendDelay   time.Duration
}

// Selling is the supplying facet of an actor. It answers requests for
// quote from its stock, confirms or rejects orders, ships after the
// handling time and invoices the shipment.
type Selling struct {
	log       *slog.Logger
	actor     *actor.Actor
	role      *actor.Role
	ids       *domain.IDGenerator
	inventory contract.Inventory
	transport contract.TransportPlanner
	locator   contract.Locator
	cfg       SellingConfig
}

func NewSelling(log *slog.Logger, a *actor.Actor, ids *domain.IDGenerator,
	inventory contract.Inventory, transport contract.TransportPlanner,
	locator contract.Locator, cfg SellingConfig, receiver actor.ContentReceiver) (*Selling, error) {
	role, err := actor.NewRole(a, domain.RoleSelling, receiver)
	if err != nil {
		return nil, err
	}
	s := &Selling{
		log:       log,
		actor:     a,
		role:      role,
		ids:       ids,
		inventory: inventory,
		transport: transport,
		locator:   locator,
		cfg:       cfg,
	}
	role.RegisterHandler(content.KindRequestForQuote, actor.HandlerFunc(s.handleRequestForQuote))
	role.RegisterHandler(content.KindOrder, actor.HandlerFunc(s.handleOrder))
	return s, nil
}

func (s *Selling) Role() *actor.Role { return s.role }

// handleRequestForQuote answers with a quote when stock and a route exist,
// and with an explicit decline otherwise. The offered amount may be lower
// than the requested one; the buyer's filters decide whether partial
// coverage is acceptable.
func (s *Selling) handleRequestForQuote(c content.Content) bool {
	rfq, ok := c.(*content.RequestForQuote)
	if !ok {
		return false
	}
	now := s.actor.Scheduler().Now()

	buyerLocation, ok := s.locator.LocationOf(rfq.Sender())
	if !ok {
		s.log.Warn("request for quote from unlocatable buyer",
			"actor", s.actor.Name, "buyer", rfq.Sender())
		s.decline(rfq, "unknown buyer location")
		return true
	}
	route, err := s.transport.Route(s.actor.Location, buyerLocation)
	if err != nil {
		s.decline(rfq, "no route to buyer")
		return true
	}

	available := s.inventory.Available(rfq.Product())
	if available <= 0 {
		s.decline(rfq, "out of stock")
		return true
	}
	offered := rfq.Amount()
	if available < offered {
		offered = available
	}

	unitPrice := rfq.Product().MarketUnitPrice*s.cfg.PriceFactor +
		route.FreightCost/float64(offered)
	proposedDelivery := now.Add(s.cfg.SendDelay + s.cfg.HandlingTime + route.Duration)
	validUntil := now.Add(s.cfg.QuoteValidity)

	quote := content.NewQuote(s.ids, now, rfq, unitPrice, offered, proposedDelivery, validUntil)
	if err := s.actor.Send(quote, s.cfg.SendDelay); err != nil {
		s.log.Warn("quote not sent", "actor", s.actor.Name, "error", err)
	}
	return true
}

func (s *Selling) decline(rfq *content.RequestForQuote, reason string) {
	now := s.actor.Scheduler().Now()
	no := content.NewQuoteNo(s.ids, now, rfq, reason)
	if err := s.actor.Send(no, s.cfg.SendDelay); err != nil {
		s.log.Warn("quote decline not sent", "actor", s.actor.Name, "error", err)
	}
}

// handleOrder reserves the ordered amount and confirms, or rejects when
// the stock was sold in the meantime. A confirmed order schedules the
// shipment after the handling time.
func (s *Selling) handleOrder(c content.Content) bool {
	order, ok := c.(*content.Order)
	if !ok {
		return false
	}
	now := s.actor.Scheduler().Now()

	if err := s.inventory.Reserve(order.Product(), order.Amount()); err != nil {
		s.log.Info("order rejected",
			"actor", s.actor.Name, "grouping_id", order.GroupingID(),
			"product", order.Product().ID, "amount", order.Amount(), "error", err)
		rejection := content.NewOrderConfirmation(s.ids, now, order, false, time.Time{})
		if err := s.actor.Send(rejection, s.cfg.SendDelay); err != nil {
			s.log.Warn("order rejection not sent", "actor", s.actor.Name, "error", err)
		}
		return true
	}

	planned := now.Add(s.cfg.HandlingTime)
	confirmation := content.NewOrderConfirmation(s.ids, now, order, true, planned)
	if err := s.actor.Send(confirmation, s.cfg.SendDelay); err != nil {
		s.log.Warn("order confirmation not sent", "actor", s.actor.Name, "error", err)
	}

	if err := s.actor.Scheduler().After(s.cfg.HandlingTime, func() {
		s.ship(order, confirmation)
	}); err != nil {
		s.log.Warn("shipment not scheduled", "actor", s.actor.Name, "error", err)
	}
	return true
}

// ship moves the reserved stock out, sends the shipment with the route's
// transport duration as delivery delay, and invoices it.
func (s *Selling) ship(order *content.Order, confirmation *content.OrderConfirmation) {
	now := s.actor.Scheduler().Now()

	buyerLocation, ok := s.locator.LocationOf(order.Sender())
	if !ok {
		s.log.Warn("shipment to unlocatable buyer dropped",
			"actor", s.actor.Name, "grouping_id", order.GroupingID())
		s.inventory.Release(order.Product(), order.Amount())
		return
	}
	route, err := s.transport.Route(s.actor.Location, buyerLocation)
	if err != nil {
		s.log.Warn("shipment without route dropped",
			"actor", s.actor.Name, "grouping_id", order.GroupingID(), "error", err)
		s.inventory.Release(order.Product(), order.Amount())
		return
	}

	if err := s.inventory.Remove(order.Product(), order.Amount()); err != nil {
		s.log.Warn("reserved stock vanished before shipping",
			"actor", s.actor.Name, "grouping_id", order.GroupingID(), "error", err)
		return
	}

	shipment := content.NewShipment(s.ids, now, confirmation, route.Carrier)
	if err := s.actor.Send(shipment, route.Duration); err != nil {
		s.log.Warn("shipment not sent", "actor", s.actor.Name, "error", err)
		return
	}

	total := order.UnitPrice() * float64(order.Amount())
	invoice := content.NewInvoice(s.ids, now, shipment, total, now.Add(s.cfg.PaymentTerm))
	if err := s.actor.Send(invoice, s.cfg.SendDelay); err != nil {
		s.log.Warn("invoice not sent", "actor", s.actor.Name, "error", err)
	}
}
