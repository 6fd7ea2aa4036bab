// clock.go: the cached monotonic clock the hot paths read from.
//
// go-timecache keeps a background-refreshed cache of the current time,
// trading a bounded staleness window (sub-millisecond in practice) for the
// removal of a syscall from every nonce emission — the same trade-off
// agilira-balios makes for its default TimeProvider.
package nonce

import "github.com/agilira/go-timecache"

// nowMillis returns the current Unix time in milliseconds, from the same
// cached clock source used to compute init_at_ms at Init.
func nowMillis() uint64 {
	return uint64(timecache.CachedTimeNano() / int64(1e6))
}

// nowMs returns the current time in milliseconds relative to st's epoch —
// the same frame every embedded nonce timestamp is written in
// (init_at_ms, counter cycles). Applies monoEpochOffsetMs (-epochMs, fixed
// once at Init) to the same clock reading Init used for init_at_ms, so both
// sit in one frame.
func (st *State) nowMs() uint64 {
	return uint64(int64(nowMillis()) + st.monoEpochOffsetMs)
}
