package trading

import (
	"log/slog"
	"time"

	"trade-lab/actor"
	"trade-lab/content"
	"trade-lab/domain"
)

type FinancingConfig struct {
	// SettleDelay is how long the actor normally sits on an invoice.
	SettleDelay time.Duration
	SendDelay   time.Duration
	// Bank receives a transfer for every incoming payment. Optional: an
	// actor that never sells needs no bank.
	Bank domain.ActorID
}

// Financing settles the monetary leg of a negotiation. On the buying side
// it pays invoices, with a forced payment at the due date as fallback; on
// the selling side it registers incoming payments with the bank. Both
// callbacks of an invoice query the store before acting, so whichever
// fires second is a no-op.
type Financing struct {
	log   *slog.Logger
	actor *actor.Actor
	role  *actor.Role
	ids   *domain.IDGenerator
	cfg   FinancingConfig
}

func NewFinancing(log *slog.Logger, a *actor.Actor, ids *domain.IDGenerator,
	cfg FinancingConfig, receiver actor.ContentReceiver) (*Financing, error) {
	role, err := actor.NewRole(a, domain.RoleFinancing, receiver)
	if err != nil {
		return nil, err
	}
	f := &Financing{log: log, actor: a, role: role, ids: ids, cfg: cfg}
	role.RegisterHandler(content.KindInvoice, actor.HandlerFunc(f.handleInvoice))
	role.RegisterHandler(content.KindPayment, actor.HandlerFunc(f.handlePayment))
	return f, nil
}

func (f *Financing) Role() *actor.Role { return f.role }

// handleInvoice schedules the regular settlement and the forced due-date
// check. There is no cancellation: paying retires the invoice from the
// live view, which is what the later callback checks.
func (f *Financing) handleInvoice(c content.Content) bool {
	invoice, ok := c.(*content.Invoice)
	if !ok {
		return false
	}
	now := f.actor.Scheduler().Now()

	settleAt := now.Add(f.cfg.SettleDelay)
	if settleAt.After(invoice.DueDate()) {
		settleAt = invoice.DueDate()
	}
	f.actor.Scheduler().At(settleAt, func() { f.pay(invoice, false) })
	f.actor.Scheduler().At(invoice.DueDate(), func() { f.pay(invoice, true) })
	return true
}

// pay settles an invoice that is still live. Already-settled invoices are
// gone from the live view, so redundant callbacks cost nothing.
func (f *Financing) pay(invoice *content.Invoice, forced bool) {
	if !f.actor.Store().Contains(invoice) {
		f.log.Debug("invoice already settled",
			"actor", f.actor.Name, "grouping_id", invoice.GroupingID())
		return
	}
	if forced {
		f.log.Info("forcing payment at due date",
			"actor", f.actor.Name, "grouping_id", invoice.GroupingID(),
			"total", invoice.TotalPrice())
	}
	now := f.actor.Scheduler().Now()
	payment := content.NewPayment(f.ids, now, invoice)
	if err := f.actor.Send(payment, f.cfg.SendDelay); err != nil {
		f.log.Warn("payment not sent", "actor", f.actor.Name, "error", err)
	}
}

// handlePayment registers received funds with the configured bank. The
// bank transfer is the terminal stage of the chain.
func (f *Financing) handlePayment(c content.Content) bool {
	payment, ok := c.(*content.Payment)
	if !ok {
		return false
	}
	if f.cfg.Bank == "" {
		f.log.Debug("payment received without a configured bank",
			"actor", f.actor.Name, "grouping_id", payment.GroupingID())
		return true
	}
	now := f.actor.Scheduler().Now()
	transfer := content.NewBankTransfer(f.ids, now, payment, f.cfg.Bank)
	if err := f.actor.Send(transfer, f.cfg.SendDelay); err != nil {
		f.log.Warn("bank transfer not sent", "actor", f.actor.Name, "error", err)
	}
	return true
}
