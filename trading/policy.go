package trading

import (
	"time"

	"trade-lab/actor"
	"trade-lab/content"
)

// QuotePolicy decides when the purchaser stops waiting for quotes. A
// policy is the role's handler for Quote and QuoteNo content; both reach
// the purchaser's decide, which the open-set guard keeps idempotent.
type QuotePolicy interface {
	actor.ContentHandler
}

// WaitForAllQuotes places the order only once every solicited supplier
// has answered, with a quote or an explicit decline. No timer is involved.
type WaitForAllQuotes struct {
	p *Purchasing
}

func NewWaitForAllQuotes(p *Purchasing) *WaitForAllQuotes {
	return &WaitForAllQuotes{p: p}
}

func (w *WaitForAllQuotes) Handle(c content.Content) bool {
	gc, ok := c.(content.GroupedContent)
	if !ok {
		return false
	}
	gid := gc.GroupingID()
	if got, asked := w.p.answered(gid); asked > 0 && got >= asked {
		w.p.decide(gid)
	}
	return true
}

// WaitWithTimeout arms a decision callback at the RFQ cutoff when the
// first quote for a grouping id arrives, and decides earlier if every
// supplier answers before then. Both triggers can fire for the same
// grouping id; the purchaser's open set makes the second a no-op. There
// is no cancellation: the late callback simply finds nothing to do.
type WaitWithTimeout struct {
	p     *Purchasing
	armed map[int64]struct{}
}

func NewWaitWithTimeout(p *Purchasing) *WaitWithTimeout {
	return &WaitWithTimeout{p: p, armed: make(map[int64]struct{})}
}

func (w *WaitWithTimeout) Handle(c content.Content) bool {
	gc, ok := c.(content.GroupedContent)
	if !ok {
		return false
	}
	gid := gc.GroupingID()

	if _, isQuote := c.(*content.Quote); isQuote {
		if _, ok := w.armed[gid]; !ok {
			w.armed[gid] = struct{}{}
			w.p.actor.Scheduler().At(w.cutoff(gid), func() {
				delete(w.armed, gid)
				w.p.decide(gid)
			})
		}
	}

	if got, asked := w.p.answered(gid); asked > 0 && got >= asked {
		w.p.decide(gid)
	}
	return true
}

// cutoff looks the RFQ cutoff date up in the sent history. The scheduler
// clamps past timestamps to now, which is exactly the contractual
// max(now, cutoffDate).
func (w *WaitWithTimeout) cutoff(gid int64) time.Time {
	rfqs := w.p.actor.Store().HistoryByGroup(gid, content.KindRequestForQuote, true)
	if len(rfqs) == 0 {
		return w.p.actor.Scheduler().Now()
	}
	return rfqs[0].(*content.RequestForQuote).CutoffDate()
}
