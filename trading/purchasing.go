package trading

import (
	"log/slog"
	"time"

	"trade-lab/actor"
	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/domain"
)

// RestockRule triggers a fresh demand when on-hand plus incoming stock of
// a product drops below the reorder point.
type RestockRule struct {
	Product      domain.Product
	ReorderPoint domain.Amount
	TargetStock  domain.Amount
}

type PurchasingConfig struct {
	// Suppliers are the candidate sellers every demand fans out to.
	Suppliers []domain.ActorID
	// QuoteDeadline sets the RFQ cutoff relative to the demand.
	QuoteDeadline time.Duration
	// DeliveryLeadTime sets the latest delivery date of restock demands.
	DeliveryLeadTime time.Duration
	// SendDelay models internal processing before outgoing content leaves.
	SendDelay time.Duration
	Selection SelectionConfig
	Restock   []RestockRule
}

// Purchasing is the buying facet of an actor. It reacts to demands by
// soliciting quotes, hands quote traffic to the configured waiting policy,
// books confirmed orders with the inventory, receives shipments, and
// restarts rejected negotiations under a fresh grouping id.
type Purchasing struct {
	log       *slog.Logger
	actor     *actor.Actor
	role      *actor.Role
	ids       *domain.IDGenerator
	inventory contract.Inventory
	locator   contract.Locator
	cfg       PurchasingConfig

	// open holds the unanswered grouping ids. It is the idempotency
	// guard: both the quote-count trigger and the timeout trigger may
	// fire for the same grouping id, but the decision runs at most once.
	open map[int64]struct{}
	// pending keeps restocking from re-demanding a product whose
	// negotiation is still in flight.
	pending map[string]struct{}
}

func NewPurchasing(log *slog.Logger, a *actor.Actor, ids *domain.IDGenerator,
	inventory contract.Inventory, locator contract.Locator,
	cfg PurchasingConfig, receiver actor.ContentReceiver) (*Purchasing, error) {
	role, err := actor.NewRole(a, domain.RolePurchasing, receiver)
	if err != nil {
		return nil, err
	}
	p := &Purchasing{
		log:       log,
		actor:     a,
		role:      role,
		ids:       ids,
		inventory: inventory,
		locator:   locator,
		cfg:       cfg,
		open:      make(map[int64]struct{}),
		pending:   make(map[string]struct{}),
	}
	role.RegisterHandler(content.KindDemand, actor.HandlerFunc(p.handleDemand))
	role.RegisterHandler(content.KindOrderConfirmation, actor.HandlerFunc(p.handleOrderConfirmation))
	role.RegisterHandler(content.KindShipment, actor.HandlerFunc(p.handleShipment))
	return p, nil
}

func (p *Purchasing) Role() *actor.Role { return p.role }

// UsePolicy installs the quote waiting policy for this role. Must be
// called during setup; without a policy, quotes go unhandled.
func (p *Purchasing) UsePolicy(policy QuotePolicy) {
	p.role.RegisterHandler(content.KindQuote, policy)
	p.role.RegisterHandler(content.KindQuoteNo, policy)
}

// handleDemand fans a demand out to one request for quote per candidate
// supplier, all under the demand's grouping id.
func (p *Purchasing) handleDemand(c content.Content) bool {
	demand, ok := c.(*content.Demand)
	if !ok {
		return false
	}
	if len(p.cfg.Suppliers) == 0 {
		p.log.Warn("demand with no candidate suppliers",
			"actor", p.actor.Name, "product", demand.Product().ID)
		return true
	}

	now := p.actor.Scheduler().Now()
	gid := demand.GroupingID()
	p.open[gid] = struct{}{}
	p.pending[demand.Product().ID] = struct{}{}

	cutoff := now.Add(p.cfg.QuoteDeadline)
	for _, supplier := range p.cfg.Suppliers {
		rfq := content.NewRequestForQuote(p.ids, now, p.actor.ID, demand, supplier, cutoff)
		if err := p.actor.Send(rfq, p.cfg.SendDelay); err != nil {
			p.log.Warn("request for quote not sent",
				"actor", p.actor.Name, "supplier", supplier, "error", err)
		}
	}
	return true
}

// decide selects the best quote and places the order. Safe to trigger from
// several paths: the open-set guard makes every call after the first a
// no-op.
func (p *Purchasing) decide(gid int64) {
	if _, ok := p.open[gid]; !ok {
		p.log.Debug("quote decision already taken", "actor", p.actor.Name, "grouping_id", gid)
		return
	}
	delete(p.open, gid)

	store := p.actor.Store()
	rfqs := store.HistoryByGroup(gid, content.KindRequestForQuote, true)
	if len(rfqs) == 0 {
		p.log.Warn("quote decision without any request for quote",
			"actor", p.actor.Name, "grouping_id", gid)
		return
	}
	rfq := rfqs[0].(*content.RequestForQuote)

	now := p.actor.Scheduler().Now()
	var quotes []*content.Quote
	for _, gc := range store.ContentListBy(gid, content.KindQuote, false) {
		quotes = append(quotes, gc.(*content.Quote))
	}

	best := SelectBestQuote(now, p.actor.Location, p.locator, quotes, rfq, p.cfg.Selection)
	if best == nil {
		p.log.Warn("no quote survived selection",
			"actor", p.actor.Name, "grouping_id", gid,
			"product", rfq.Product().ID, "candidates", len(quotes))
		delete(p.pending, rfq.Product().ID)
		return
	}

	order := content.NewOrderBasedOnQuote(p.ids, now, best)
	if err := p.actor.Send(order, p.cfg.SendDelay); err != nil {
		p.log.Warn("order not sent", "actor", p.actor.Name, "grouping_id", gid, "error", err)
	}
}

// answered reports how many of the grouping id's suppliers have responded,
// counting explicit declines, against how many were asked. Counts come
// from the history view: the live RFQ entries are already retired by the
// time a quote handler runs.
func (p *Purchasing) answered(gid int64) (got, asked int) {
	store := p.actor.Store()
	got = len(store.HistoryByGroup(gid, content.KindQuote, false)) +
		len(store.HistoryByGroup(gid, content.KindQuoteNo, false))
	asked = len(store.HistoryByGroup(gid, content.KindRequestForQuote, true))
	return got, asked
}

// handleOrderConfirmation books confirmed amounts as incoming stock. A
// rejection purges the grouping id's live state and reopens the whole
// negotiation: a fresh demand with identical parameters under a new
// grouping id.
func (p *Purchasing) handleOrderConfirmation(c content.Content) bool {
	confirmation, ok := c.(*content.OrderConfirmation)
	if !ok {
		return false
	}
	gid := confirmation.GroupingID()

	if confirmation.Confirmed() {
		p.inventory.Order(confirmation.Product(), confirmation.Amount())
		return true
	}

	p.log.Info("order rejected, restarting negotiation",
		"actor", p.actor.Name, "grouping_id", gid, "product", confirmation.Product().ID)

	store := p.actor.Store()
	demands := store.HistoryByGroup(gid, content.KindDemand, false)
	if len(demands) == 0 {
		demands = store.HistoryByGroup(gid, content.KindDemand, true)
	}
	store.RemoveAll(gid)
	if len(demands) == 0 {
		p.log.Warn("rejected order without originating demand",
			"actor", p.actor.Name, "grouping_id", gid)
		return true
	}

	now := p.actor.Scheduler().Now()
	fresh := demands[0].(*content.Demand).Reissue(p.ids, now)
	if err := p.actor.Send(fresh, p.cfg.SendDelay); err != nil {
		p.log.Warn("reissued demand not sent", "actor", p.actor.Name, "error", err)
	}
	return true
}

// handleShipment enters the delivered amount into stock.
func (p *Purchasing) handleShipment(c content.Content) bool {
	shipment, ok := c.(*content.Shipment)
	if !ok {
		return false
	}
	p.inventory.Enter(shipment.Product(), shipment.Amount())
	delete(p.pending, shipment.Product().ID)
	return true
}

// RunRestocking starts the periodic restock check. Each tick issues a
// demand, addressed to the actor itself, for every product below its
// reorder point that has no negotiation in flight.
func (p *Purchasing) RunRestocking(interval time.Duration) error {
	var tick func()
	tick = func() {
		p.checkRestock()
		_ = p.actor.Scheduler().After(interval, tick)
	}
	return p.actor.Scheduler().After(interval, tick)
}

func (p *Purchasing) checkRestock() {
	now := p.actor.Scheduler().Now()
	for _, rule := range p.cfg.Restock {
		if _, busy := p.pending[rule.Product.ID]; busy {
			continue
		}
		expected := p.inventory.Available(rule.Product) + p.inventory.Incoming(rule.Product)
		if expected >= rule.ReorderPoint {
			continue
		}
		amount := rule.TargetStock - expected
		demand := content.NewDemand(p.ids, now, p.actor.ID, p.actor.ID,
			rule.Product, amount, now.Add(p.cfg.DeliveryLeadTime))
		p.pending[rule.Product.ID] = struct{}{}
		if err := p.actor.Send(demand, 0); err != nil {
			p.log.Warn("restock demand not sent",
				"actor", p.actor.Name, "product", rule.Product.ID, "error", err)
			delete(p.pending, rule.Product.ID)
		}
	}
}
