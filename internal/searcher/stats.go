package searcher

import "github.com/rs/zerolog"

// Stats accumulates counters over a single search. The searcher is
// single-threaded, so plain ints are fine.
type Stats struct {
	Nodes    int // interior nodes visited
	Leaves   int // static evaluations
	Passes   int // plies where the mover had to pass
	BetaCuts int // beta cutoffs taken
}

// Reset zeroes all counters.
func (st *Stats) Reset() {
	*st = Stats{}
}

func (st *Stats) withFields(e *zerolog.Event) *zerolog.Event {
	return e.
		Int("nodes", st.Nodes).
		Int("leaves", st.Leaves).
		Int("passes", st.Passes).
		Int("beta_cuts", st.BetaCuts)
}
