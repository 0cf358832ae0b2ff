package intersection

import "fmt"

// IDGenerator mints unique vehicle identifiers of the form "DDR-NNNN",
// where DDR is the 3-letter approach/route code and NNNN is a
// monotonically increasing, zero-padded counter. Ported from
// original_source/src/cars_id.rs.
type IDGenerator struct {
	current int
	max     int
}

// NewIDGenerator returns a generator counting up to the spec's 9999 cap.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{current: 0, max: 9999}
}

var ddrCodes = map[Direction]map[Route]string{
	South: {Right: "SRT", Left: "SLT", Straight: "SST"},
	North: {Right: "NRT", Left: "NLT", Straight: "NST"},
	East:  {Right: "ERT", Left: "ELT", Straight: "EST"},
	West:  {Right: "WRT", Left: "WLT", Straight: "WST"},
}

// Next mints the next identifier for the given direction/route. Once the
// counter is exhausted it keeps returning ids at the cap rather than
// failing: id exhaustion is not a modeled error condition.
func (g *IDGenerator) Next(dir Direction, route Route) string {
	if g.current < g.max {
		g.current++
	}
	return fmt.Sprintf("%s-%04d", ddrCodes[dir][route], g.current)
}
