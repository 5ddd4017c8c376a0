package domain

// IDGenerator mints the process-wide monotonic counters for content unique
// ids and negotiation grouping ids. It is owned by the simulation model and
// injected wherever ids are produced, which keeps replays deterministic.
//
// The cooperative scheduler runs one callback at a time, so plain increments
// are safe here. A multi-threaded port would need atomics.
type IDGenerator struct {
	contentID  int64
	groupingID int64
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NextContentID returns a strictly increasing content id.
func (g *IDGenerator) NextContentID() int64 {
	g.contentID++
	return g.contentID
}

// NextGroupingID returns a strictly increasing grouping id. A grouping id is
// assigned once by the demand that opens a negotiation and propagated
// unchanged by every message built from an earlier one.
func (g *IDGenerator) NextGroupingID() int64 {
	g.groupingID++
	return g.groupingID
}
