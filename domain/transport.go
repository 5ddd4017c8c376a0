package domain

import "time"

// TransportOption is a priced route between two locations, as returned by
// the transport planner collaborator.
type TransportOption struct {
	Origin      Location
	Destination Location
	Carrier     string
	Duration    time.Duration
	FreightCost float64
}
