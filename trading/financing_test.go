package trading

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"trade-lab/content"
	"trade-lab/domain"
	"trade-lab/runtime"
)

// invoiceBetween builds the negotiation tail leading to an invoice from
// the seller to the buyer.
func invoiceBetween(ids *domain.IDGenerator, buyer, seller domain.ActorID,
	total float64, due time.Time) *content.Invoice {
	demand := content.NewDemand(ids, start, buyer, buyer, cement(), 100, start.Add(240*time.Hour))
	rfq := content.NewRequestForQuote(ids, start, buyer, demand, seller, start.Add(24*time.Hour))
	quote := content.NewQuote(ids, start, rfq, total/100, 100, start.Add(48*time.Hour), start.Add(96*time.Hour))
	order := content.NewOrderBasedOnQuote(ids, start, quote)
	confirmation := content.NewOrderConfirmation(ids, start, order, true, start.Add(48*time.Hour))
	shipment := content.NewShipment(ids, start, confirmation, "RoadFreight")
	return content.NewInvoice(ids, start, shipment, total, due)
}

func TestFinancing_Settles_Before_The_Due_Date(t *testing.T) {
	req := require.New(t)
	model := runtime.NewModel(testLogger(), start)
	collect := &sentCollector{}
	model.AddSink(collect)

	buyer := model.NewActor("buyer", domain.Location{})
	seller := model.NewActor("seller", domain.Location{})
	_, err := NewFinancing(testLogger(), buyer, model.IDs(), FinancingConfig{
		SettleDelay: 72 * time.Hour,
	}, nil)
	req.NoError(err)

	due := start.Add(336 * time.Hour)
	invoice := invoiceBetween(model.IDs(), buyer.ID, seller.ID, 10000, due)
	req.NoError(seller.Send(invoice, 0))
	req.NoError(model.Run(context.Background(), time.Time{}))

	// Then exactly one payment went out, after the settle delay
	req.Equal(1, collect.count(content.KindPayment))
	payment := collect.last(content.KindPayment).(*content.Payment)
	req.Equal(10000.0, payment.Total())
	req.Equal(invoice.UniqueID(), payment.InvoiceID())

	for _, e := range collect.events {
		if e.Content.Kind() == content.KindPayment {
			req.Equal(start.Add(72*time.Hour), e.At)
		}
	}
}

func TestFinancing_Forces_Payment_At_The_Due_Date_Exactly_Once(t *testing.T) {
	req := require.New(t)
	model := runtime.NewModel(testLogger(), start)
	collect := &sentCollector{}
	model.AddSink(collect)

	buyer := model.NewActor("buyer", domain.Location{})
	seller := model.NewActor("seller", domain.Location{})

	// Given a settle delay far beyond the payment term
	_, err := NewFinancing(testLogger(), buyer, model.IDs(), FinancingConfig{
		SettleDelay: 500 * time.Hour,
	}, nil)
	req.NoError(err)

	due := start.Add(336 * time.Hour)
	invoice := invoiceBetween(model.IDs(), buyer.ID, seller.ID, 10000, due)
	req.NoError(seller.Send(invoice, 0))
	req.NoError(model.Run(context.Background(), time.Time{}))

	// Then the regular and the forced callback coincide at the due date
	// and the second one found the invoice already settled
	req.Equal(1, collect.count(content.KindPayment))
	for _, e := range collect.events {
		if e.Content.Kind() == content.KindPayment {
			req.Equal(due, e.At)
		}
	}
}

func TestFinancing_Routes_Received_Payments_To_The_Bank(t *testing.T) {
	req := require.New(t)
	model := runtime.NewModel(testLogger(), start)
	collect := &sentCollector{}
	model.AddSink(collect)

	bank := model.NewActor("bank", domain.Location{})
	banking, err := NewBanking(testLogger(), bank, nil)
	req.NoError(err)

	buyer := model.NewActor("buyer", domain.Location{})
	seller := model.NewActor("seller", domain.Location{})
	_, err = NewFinancing(testLogger(), buyer, model.IDs(), FinancingConfig{
		SettleDelay: 72 * time.Hour,
	}, nil)
	req.NoError(err)
	_, err = NewFinancing(testLogger(), seller, model.IDs(), FinancingConfig{
		SettleDelay: 72 * time.Hour,
		Bank:        bank.ID,
	}, nil)
	req.NoError(err)

	invoice := invoiceBetween(model.IDs(), buyer.ID, seller.ID, 10000, start.Add(336*time.Hour))
	req.NoError(seller.Send(invoice, 0))
	req.NoError(model.Run(context.Background(), time.Time{}))

	// Then the payment triggered a transfer and the bank booked it
	req.Equal(1, collect.count(content.KindBankTransfer))
	req.Equal(10000.0, banking.Balance(seller.ID))
	req.Equal(-10000.0, banking.Balance(buyer.ID))
	req.Zero(banking.Balance(bank.ID))
}
