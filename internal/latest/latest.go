// Package latest provides a monotonic sequence guard for discarding
// stale responses. Requests for the same logical operation may race on
// the wire; each attempt draws a sequence number before it starts and
// only the newest attempt is allowed to apply its result.
package latest

import "sync/atomic"

// Guard hands out monotonically increasing sequence numbers. The zero
// value is ready to use.
type Guard struct {
	seq atomic.Uint64
}

// Begin registers a new attempt and returns its sequence number.
func (g *Guard) Begin() uint64 {
	return g.seq.Add(1)
}

// Current reports whether seq still belongs to the newest attempt.
// A false result means a later attempt has begun and this response
// must be discarded.
func (g *Guard) Current(seq uint64) bool {
	return g.seq.Load() == seq
}
