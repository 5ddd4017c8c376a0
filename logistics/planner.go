// Package logistics is the transport collaborator: given an origin and a
// destination, return a priced route. Routes are derived from straight
// line distance, a travel speed and a cost rate; good enough for ranking
// suppliers and timing shipments.
package logistics

import (
	"fmt"
	"time"

	"trade-lab/domain"
	"trade-lab/errors"
)

// Planner implements contract.TransportPlanner.
type Planner struct {
	carrier string
	// Speed in distance units per hour.
	speed float64
	// CostPerDistance prices one distance unit of freight.
	costPerDistance float64
	// MaxRange caps serviceable distance; zero means unlimited.
	maxRange float64
}

func NewPlanner(carrier string, speed, costPerDistance, maxRange float64) *Planner {
	return &Planner{
		carrier:         carrier,
		speed:           speed,
		costPerDistance: costPerDistance,
		maxRange:        maxRange,
	}
}

func (p *Planner) Route(from, to domain.Location) (domain.TransportOption, error) {
	distance := from.DistanceTo(to)
	if p.maxRange > 0 && distance > p.maxRange {
		return domain.TransportOption{}, fmt.Errorf("route %s to %s (%.1f): %w",
			from.Name, to.Name, distance, errors.ErrNoRoute)
	}
	hours := distance / p.speed
	return domain.TransportOption{
		Origin:      from,
		Destination: to,
		Carrier:     p.carrier,
		Duration:    time.Duration(hours * float64(time.Hour)),
		FreightCost: distance * p.costPerDistance,
	}, nil
}
