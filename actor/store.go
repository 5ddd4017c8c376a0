package actor

import (
	"log/slog"

	"trade-lab/content"
	"trade-lab/domain"
)

// ContentStore is the per-actor causal log of everything sent and received.
// Storage is an append-only arena; two index families point into it:
//
//   - a live view keyed by (grouping id, kind), the current negotiation
//     state, from which superseded documents are retired;
//   - a history view keyed by (kind, sent flag), which never loses
//     anything and supports post-hoc audit of a negotiation.
//
// Retiring removes an index entry, never an arena record, so the two views
// stay independent. The store is owned by exactly one actor and the
// cooperative scheduler guarantees single-threaded access.
type ContentStore struct {
	log     *slog.Logger
	owner   domain.ActorID
	records []storeRecord
	live    map[int64]map[content.Kind][]int
	history map[histKey][]int
}

type storeRecord struct {
	c    content.Content
	sent bool
}

type histKey struct {
	kind content.Kind
	sent bool
}

// supersession names the immediately preceding stage a new document
// retires from the live view. Direction sensitive: the two parties see the
// same logical event asymmetrically, so sent and received entries are
// retired independently.
type supersession struct {
	prevKind content.Kind
	prevSent bool
}

var supersedes = map[histKey]supersession{
	{content.KindQuote, false}:             {content.KindRequestForQuote, true},
	{content.KindQuote, true}:              {content.KindRequestForQuote, false},
	{content.KindOrder, true}:              {content.KindQuote, false},
	{content.KindOrderConfirmation, false}: {content.KindOrder, true},
	{content.KindOrderConfirmation, true}:  {content.KindOrder, false},
	{content.KindShipment, false}:          {content.KindOrderConfirmation, false},
	{content.KindShipment, true}:           {content.KindOrderConfirmation, true},
	{content.KindPayment, true}:            {content.KindInvoice, false},
	{content.KindPayment, false}:           {content.KindInvoice, true},
}

func NewContentStore(log *slog.Logger, owner domain.ActorID) *ContentStore {
	return &ContentStore{
		log:     log,
		owner:   owner,
		live:    make(map[int64]map[content.Kind][]int),
		history: make(map[histKey][]int),
	}
}

// Add records a content value as sent or received, then applies the causal
// cleanup protocol: a recognized protocol stage retires the predecessor
// documents it supersedes from the live view. A missing predecessor is a
// protocol anomaly, logged and otherwise ignored.
func (s *ContentStore) Add(c content.Content, sent bool) {
	idx := len(s.records)
	s.records = append(s.records, storeRecord{c: c, sent: sent})

	key := histKey{kind: c.Kind(), sent: sent}
	s.history[key] = append(s.history[key], idx)

	gc, ok := c.(content.GroupedContent)
	if !ok {
		return
	}
	gid := gc.GroupingID()
	kinds, ok := s.live[gid]
	if !ok {
		kinds = make(map[content.Kind][]int)
		s.live[gid] = kinds
	}
	kinds[c.Kind()] = append(kinds[c.Kind()], idx)

	s.retirePredecessors(gc, sent)
}

// retirePredecessors removes the superseded earlier-stage documents of the
// same grouping id and counterparty from the live view.
func (s *ContentStore) retirePredecessors(c content.GroupedContent, sent bool) {
	rule, ok := supersedes[histKey{kind: c.Kind(), sent: sent}]
	if !ok {
		return
	}
	gid := c.GroupingID()
	party := counterparty(c, sent)

	prev := s.live[gid][rule.prevKind]
	kept := prev[:0]
	retired := 0
	for _, idx := range prev {
		rec := s.records[idx]
		if rec.sent == rule.prevSent && counterparty(rec.c, rec.sent) == party {
			retired++
			continue
		}
		kept = append(kept, idx)
	}
	if retired == 0 {
		s.log.Warn("causal cleanup found no predecessor",
			"owner", s.owner,
			"grouping_id", gid,
			"kind", c.Kind(),
			"sent", sent,
			"expected", rule.prevKind)
		return
	}
	if len(kept) == 0 {
		delete(s.live[gid], rule.prevKind)
		return
	}
	s.live[gid][rule.prevKind] = kept
}

// counterparty is the other side of a document: the receiver of something
// sent, the sender of something received.
func counterparty(c content.Content, sent bool) domain.ActorID {
	if sent {
		return c.Receiver()
	}
	return c.Sender()
}

// ContentList returns the live documents of a kind for a grouping id, in
// both directions, in insertion order. Empty if none.
func (s *ContentStore) ContentList(gid int64, kind content.Kind) []content.GroupedContent {
	var out []content.GroupedContent
	for _, idx := range s.live[gid][kind] {
		out = append(out, s.records[idx].c.(content.GroupedContent))
	}
	return out
}

// ContentListBy returns the live documents of a kind for a grouping id,
// restricted to one direction.
func (s *ContentStore) ContentListBy(gid int64, kind content.Kind, sent bool) []content.GroupedContent {
	var out []content.GroupedContent
	for _, idx := range s.live[gid][kind] {
		if s.records[idx].sent == sent {
			out = append(out, s.records[idx].c.(content.GroupedContent))
		}
	}
	return out
}

// History returns everything of a kind ever sent or received, regardless
// of live-view cleanup.
func (s *ContentStore) History(kind content.Kind, sent bool) []content.Content {
	var out []content.Content
	for _, idx := range s.history[histKey{kind: kind, sent: sent}] {
		out = append(out, s.records[idx].c)
	}
	return out
}

// HistoryByGroup filters the full history view by grouping id.
func (s *ContentStore) HistoryByGroup(gid int64, kind content.Kind, sent bool) []content.GroupedContent {
	var out []content.GroupedContent
	for _, idx := range s.history[histKey{kind: kind, sent: sent}] {
		if gc, ok := s.records[idx].c.(content.GroupedContent); ok && gc.GroupingID() == gid {
			out = append(out, gc)
		}
	}
	return out
}

// Contains reports whether the exact document is still live. Timeout
// handlers use it to decide whether a forced fallback action is still
// necessary.
func (s *ContentStore) Contains(c content.Content) bool {
	gc, ok := c.(content.GroupedContent)
	if !ok {
		return false
	}
	for _, idx := range s.live[gc.GroupingID()][c.Kind()] {
		if s.records[idx].c.UniqueID() == c.UniqueID() {
			return true
		}
	}
	return false
}

// ContainsKind reports whether any live document of the kind exists for
// the grouping id.
func (s *ContentStore) ContainsKind(gid int64, kind content.Kind) bool {
	return len(s.live[gid][kind]) > 0
}

// RemoveAll purges every stage of a grouping id from the live view only.
// History is untouched. Used when a negotiation concludes or is abandoned
// and restarted from scratch.
func (s *ContentStore) RemoveAll(gid int64) {
	delete(s.live, gid)
}
