package content

import (
	"time"

	"trade-lab/domain"
)

// Payment settles an invoice. Sent by the buyer's financing role to the
// seller, either after the regular settle delay or forced at the due date.
type Payment struct {
	grouped
	invoiceID int64
	total     float64
}

func NewPayment(ids *domain.IDGenerator, now time.Time, invoice *Invoice) *Payment {
	return &Payment{
		grouped: grouped{
			base:       newBase(ids, KindPayment, invoice.Receiver(), invoice.Sender(), now),
			groupingID: invoice.GroupingID(),
		},
		invoiceID: invoice.UniqueID(),
		total:     invoice.TotalPrice(),
	}
}

func (p *Payment) InvoiceID() int64 { return p.invoiceID }
func (p *Payment) Total() float64   { return p.total }

// BankTransfer registers the received funds with the seller's bank.
// Terminal stage of a negotiation chain.
type BankTransfer struct {
	grouped
	payer domain.ActorID
	payee domain.ActorID
	total float64
}

func NewBankTransfer(ids *domain.IDGenerator, now time.Time, payment *Payment, bank domain.ActorID) *BankTransfer {
	return &BankTransfer{
		grouped: grouped{
			base:       newBase(ids, KindBankTransfer, payment.Receiver(), bank, now),
			groupingID: payment.GroupingID(),
		},
		payer: payment.Sender(),
		payee: payment.Receiver(),
		total: payment.Total(),
	}
}

func (t *BankTransfer) Payer() domain.ActorID { return t.payer }
func (t *BankTransfer) Payee() domain.ActorID { return t.payee }
func (t *BankTransfer) Total() float64        { return t.total }
