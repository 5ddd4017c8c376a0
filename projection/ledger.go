// Package projection builds read models from observed content-sent
// events. The ledger reconstructs every negotiation chain for post-hoc
// audit and the end-of-run report. It never emits content or feeds back
// into the simulation.
package projection

import (
	"sort"
	"sync"
	"time"

	"trade-lab/content"
	"trade-lab/contract"
	"trade-lab/domain"
)

// Outcome classifies how a negotiation chain ended.
type Outcome string

const (
	OutcomeOpen      Outcome = "OPEN"
	OutcomeSettled   Outcome = "SETTLED"
	OutcomeRestarted Outcome = "RESTARTED"
	OutcomeDeclined  Outcome = "DECLINED"
)

// Stage is one observed step of a negotiation.
type Stage struct {
	Kind   content.Kind
	Sender domain.ActorID
	At     time.Time
}

// Negotiation is the per-grouping-id timeline.
type Negotiation struct {
	GroupingID int64
	Product    string
	Amount     domain.Amount
	OpenedAt   time.Time
	ClosedAt   time.Time
	Stages     []Stage
	outcome    Outcome
}

// Outcome reports how the chain ended: settled once a bank transfer is
// seen, restarted when an order was rejected, declined when suppliers
// only answered with declines, open otherwise.
func (n Negotiation) Outcome() Outcome { return n.outcome }

// Duration is the span between the first and last observed stage.
func (n Negotiation) Duration() time.Duration { return n.ClosedAt.Sub(n.OpenedAt) }

// snapshot copies the chain so readers never alias the live stage slice.
func (n *Negotiation) snapshot() Negotiation {
	cp := *n
	cp.Stages = append([]Stage(nil), n.Stages...)
	return cp
}

// Ledger implements contract.ContentSink. The mutex is for readers outside
// the simulation loop (the debug server); the simulation itself is
// single-threaded.
type Ledger struct {
	mu     sync.RWMutex
	chains map[int64]*Negotiation
}

func NewLedger() *Ledger {
	return &Ledger{chains: make(map[int64]*Negotiation)}
}

func (l *Ledger) Consume(e contract.SentContent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	gc, ok := e.Content.(content.GroupedContent)
	if !ok {
		return nil
	}
	gid := gc.GroupingID()
	chain, ok := l.chains[gid]
	if !ok {
		chain = &Negotiation{GroupingID: gid, OpenedAt: e.At, outcome: OutcomeOpen}
		l.chains[gid] = chain
	}
	if pc, ok := e.Content.(content.ProductContent); ok && chain.Product == "" {
		chain.Product = pc.Product().ID
		chain.Amount = pc.Amount()
	}
	chain.Stages = append(chain.Stages, Stage{Kind: e.Content.Kind(), Sender: e.Sender, At: e.At})
	chain.ClosedAt = e.At

	switch c := e.Content.(type) {
	case *content.BankTransfer:
		chain.outcome = OutcomeSettled
	case *content.OrderConfirmation:
		if !c.Confirmed() {
			chain.outcome = OutcomeRestarted
		}
	case *content.Quote:
		if chain.outcome == OutcomeDeclined {
			chain.outcome = OutcomeOpen
		}
	case *content.QuoteNo:
		if chain.outcome == OutcomeOpen && l.onlyDeclines(chain) {
			chain.outcome = OutcomeDeclined
		}
	}
	return nil
}

func (l *Ledger) onlyDeclines(chain *Negotiation) bool {
	sawAnswer := false
	for _, s := range chain.Stages {
		switch s.Kind {
		case content.KindQuote, content.KindOrder, content.KindShipment:
			return false
		case content.KindQuoteNo:
			sawAnswer = true
		}
	}
	return sawAnswer
}

// Negotiation returns a snapshot of one chain by grouping id.
func (l *Ledger) Negotiation(gid int64) (Negotiation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n, ok := l.chains[gid]
	if !ok {
		return Negotiation{}, false
	}
	return n.snapshot(), true
}

// Negotiations returns snapshots of every chain ordered by opening time,
// then grouping id. The snapshots stay valid while the simulation keeps
// consuming.
func (l *Ledger) Negotiations() []Negotiation {
	l.mu.RLock()
	out := make([]Negotiation, 0, len(l.chains))
	for _, n := range l.chains {
		out = append(out, n.snapshot())
	}
	l.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].OpenedAt.Equal(out[j].OpenedAt) {
			return out[i].GroupingID < out[j].GroupingID
		}
		return out[i].OpenedAt.Before(out[j].OpenedAt)
	})
	return out
}
