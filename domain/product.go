// Package domain contains core concepts of the trading simulation.
// Products, locations and actor identities are plain values shared by
// every other package; they carry no behavior beyond simple arithmetic.
package domain

// Product describes a tradeable good.
// MarketUnitPrice is the reference price quote filtering compares against.
type Product struct {
	ID              string
	Name            string
	Unit            string
	MarketUnitPrice float64
}

// Amount is a quantity expressed in a product's unit of measure.
type Amount = int64
