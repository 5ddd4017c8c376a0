// Package inventory is the physical stock collaborator: plain quantity
// bookkeeping per product, with reservations and expected incoming
// amounts. No locking: the cooperative scheduler runs one callback at a
// time.
package inventory

import (
	"fmt"
	"log/slog"

	"trade-lab/domain"
	"trade-lab/errors"
)

type stock struct {
	onHand   domain.Amount
	reserved domain.Amount
	incoming domain.Amount
}

// Inventory implements contract.Inventory over an in-memory map.
type Inventory struct {
	log    *slog.Logger
	owner  string
	stocks map[string]*stock
}

func New(log *slog.Logger, owner string) *Inventory {
	return &Inventory{log: log, owner: owner, stocks: make(map[string]*stock)}
}

func (i *Inventory) get(p domain.Product) *stock {
	s, ok := i.stocks[p.ID]
	if !ok {
		s = &stock{}
		i.stocks[p.ID] = s
	}
	return s
}

// SetStock initializes the on-hand amount of a product at scenario setup.
func (i *Inventory) SetStock(p domain.Product, amount domain.Amount) {
	i.get(p).onHand = amount
}

// Available is the on-hand amount minus reservations.
func (i *Inventory) Available(p domain.Product) domain.Amount {
	s := i.get(p)
	return s.onHand - s.reserved
}

// Incoming is the amount ordered but not yet received.
func (i *Inventory) Incoming(p domain.Product) domain.Amount {
	return i.get(p).incoming
}

// Reserve holds part of the available stock for a confirmed order.
func (i *Inventory) Reserve(p domain.Product, amount domain.Amount) error {
	s := i.get(p)
	if s.onHand-s.reserved < amount {
		return fmt.Errorf("reserve %d %s of %s: %w", amount, p.Unit, p.ID, errors.ErrInsufficientStock)
	}
	s.reserved += amount
	return nil
}

// Release gives a reservation back, e.g. when a shipment is abandoned.
func (i *Inventory) Release(p domain.Product, amount domain.Amount) {
	s := i.get(p)
	s.reserved -= amount
	if s.reserved < 0 {
		i.log.Warn("released more than was reserved", "owner", i.owner, "product", p.ID)
		s.reserved = 0
	}
}

// Order books an expected incoming amount.
func (i *Inventory) Order(p domain.Product, amount domain.Amount) {
	i.get(p).incoming += amount
}

// Enter adds received stock and clears the matching incoming amount.
func (i *Inventory) Enter(p domain.Product, amount domain.Amount) {
	s := i.get(p)
	s.onHand += amount
	s.incoming -= amount
	if s.incoming < 0 {
		s.incoming = 0
	}
}

// Remove takes previously reserved stock out for shipping.
func (i *Inventory) Remove(p domain.Product, amount domain.Amount) error {
	s := i.get(p)
	if s.reserved < amount || s.onHand < amount {
		return fmt.Errorf("remove %d %s of %s: %w", amount, p.Unit, p.ID, errors.ErrInsufficientStock)
	}
	s.reserved -= amount
	s.onHand -= amount
	return nil
}
