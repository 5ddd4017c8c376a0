package content

import (
	"time"

	"trade-lab/domain"
)

// base carries the fields shared by every content value.
type base struct {
	id        int64
	kind      Kind
	sender    domain.ActorID
	receiver  domain.ActorID
	createdAt time.Time
}

func newBase(ids *domain.IDGenerator, kind Kind, sender, receiver domain.ActorID, now time.Time) base {
	return base{
		id:        ids.NextContentID(),
		kind:      kind,
		sender:    sender,
		receiver:  receiver,
		createdAt: now,
	}
}

func (b base) UniqueID() int64          { return b.id }
func (b base) Kind() Kind               { return b.kind }
func (b base) Sender() domain.ActorID   { return b.sender }
func (b base) Receiver() domain.ActorID { return b.receiver }
func (b base) CreatedAt() time.Time     { return b.createdAt }

// grouped adds the negotiation correlation key.
type grouped struct {
	base
	groupingID int64
}

func (g grouped) GroupingID() int64 { return g.groupingID }

// traded adds product and quantity.
type traded struct {
	product domain.Product
	amount  domain.Amount
}

func (t traded) Product() domain.Product { return t.product }
func (t traded) Amount() domain.Amount   { return t.amount }
