package content

import (
	"time"

	"trade-lab/domain"
)

// Shipment announces goods leaving the supplier. Its delivery delay is the
// transport duration of the chosen route.
type Shipment struct {
	grouped
	traded
	carrier string
}

func NewShipment(ids *domain.IDGenerator, now time.Time, confirmation *OrderConfirmation, carrier string) *Shipment {
	return &Shipment{
		grouped: grouped{
			base:       newBase(ids, KindShipment, confirmation.Sender(), confirmation.Receiver(), now),
			groupingID: confirmation.GroupingID(),
		},
		traded:  traded{product: confirmation.Product(), amount: confirmation.Amount()},
		carrier: carrier,
	}
}

func (s *Shipment) Carrier() string { return s.carrier }

// Invoice bills the buyer for a shipment. DueDate is the deadline the
// buyer's financing role enforces with its forced-payment fallback.
type Invoice struct {
	grouped
	traded
	totalPrice float64
	dueDate    time.Time
}

func NewInvoice(ids *domain.IDGenerator, now time.Time, shipment *Shipment,
	totalPrice float64, dueDate time.Time) *Invoice {
	return &Invoice{
		grouped: grouped{
			base:       newBase(ids, KindInvoice, shipment.Sender(), shipment.Receiver(), now),
			groupingID: shipment.GroupingID(),
		},
		traded:     traded{product: shipment.Product(), amount: shipment.Amount()},
		totalPrice: totalPrice,
		dueDate:    dueDate,
	}
}

func (i *Invoice) TotalPrice() float64 { return i.totalPrice }
func (i *Invoice) DueDate() time.Time  { return i.dueDate }
