package trading

import (
	"log/slog"

	"trade-lab/actor"
	"trade-lab/content"
	"trade-lab/domain"
)

// Banking is the bank actor's facet: it registers incoming transfers and
// keeps per-party balances for the end-of-run report.
type Banking struct {
	log      *slog.Logger
	actor    *actor.Actor
	role     *actor.Role
	balances map[domain.ActorID]float64
}

func NewBanking(log *slog.Logger, a *actor.Actor, receiver actor.ContentReceiver) (*Banking, error) {
	role, err := actor.NewRole(a, domain.RoleBanking, receiver)
	if err != nil {
		return nil, err
	}
	b := &Banking{
		log:      log,
		actor:    a,
		role:     role,
		balances: make(map[domain.ActorID]float64),
	}
	role.RegisterHandler(content.KindBankTransfer, actor.HandlerFunc(b.handleBankTransfer))
	return b, nil
}

func (b *Banking) Role() *actor.Role { return b.role }

func (b *Banking) handleBankTransfer(c content.Content) bool {
	transfer, ok := c.(*content.BankTransfer)
	if !ok {
		return false
	}
	b.balances[transfer.Payee()] += transfer.Total()
	b.balances[transfer.Payer()] -= transfer.Total()
	b.log.Info("transfer registered",
		"bank", b.actor.Name,
		"grouping_id", transfer.GroupingID(),
		"payer", transfer.Payer(),
		"payee", transfer.Payee(),
		"total", transfer.Total())
	return true
}

// Balance is the net position of a party across the whole run.
func (b *Banking) Balance(id domain.ActorID) float64 {
	return b.balances[id]
}
