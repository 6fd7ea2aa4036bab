// counter.go: the counter-nonce generator (spec §4.1). The hot path: one
// atomic fetch-add, a bit-split of the result into (cycle, count), and — for
// 64-bit nonces only — a throttle that keeps the embedded timestamp from
// ever predating real time (spec's "counter split trick" and throttling
// rule, §9).
package nonce

import (
	"time"
)

// Nonce returns a new counter nonce of the given width from the named
// factory. It is the fastest of the three generators: exactly one atomic
// increment, plus (width 64 only) an occasional sleep of whole milliseconds.
func Nonce(name string, w Width) ([]byte, error) {
	st, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return st.nonce(w)
}

func (st *State) nonce(w Width) ([]byte, error) {
	if !w.valid() {
		return nil, NewErrInvalidWidth(int(w))
	}

	c := st.counters[0].Add(1)

	var timestamp, count uint64
	if w == Width128 {
		timestamp = st.initAtMs
		count = c
	} else {
		k := counterBits(w)
		mask := uint64(1)<<uint(k) - 1
		cycle := c >> uint(k)
		count = c & mask
		timestamp = st.initAtMs + cycle

		if w == Width64 {
			st.throttle(timestamp)
		}
	}

	return encodeNonce(w, timestamp, st.machineID, count), nil
}

// throttle sleeps until now_ms() reaches timestamp, if it hasn't already.
// This is what couples counter overflow into the embedded timestamp: under
// sustained overdrive the counter "pays forward" milliseconds, and this
// sleep pulls emission back down to at most 2^13/ms. It must stay a sleep,
// never a spin — under contention every thread computes the same delta, and
// a busy wait would hotspot the clock (spec §9).
func (st *State) throttle(timestamp uint64) {
	now := st.nowMs()
	if timestamp > now {
		time.Sleep(time.Duration(timestamp-now) * time.Millisecond)
	}
}
