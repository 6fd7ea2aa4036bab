// sortable.go: the sortable-nonce generator (spec §4.2). The leading 42
// bits of every emitted nonce equal now_ms() at the instant of emission, so
// byte-lexicographic order tracks wall-clock order across a cluster.
package nonce

// SortableNonce returns a new sortable nonce of the given width from the
// named factory.
func SortableNonce(name string, w Width) ([]byte, error) {
	st, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return st.sortableNonce(w)
}

func (st *State) sortableNonce(w Width) ([]byte, error) {
	if !w.valid() {
		return nil, NewErrInvalidWidth(int(w))
	}

	const countMask = uint64(1)<<sortableCounterBits - 1

	for {
		packed := st.counters[1].Add(1)
		currentTs := packed >> sortableCounterBits
		newCount := packed & countMask

		now := st.nowMs()
		if now > currentTs {
			// Millisecond boundary crossed since this slot was last
			// written. Only one goroutine's CAS wins; everyone else
			// retries from the top (spec §9's "sortable CAS race" — the
			// retry window is one fetch-add wide and must stay unbounded).
			if st.counters[1].CompareAndSwap(packed, now<<sortableCounterBits) {
				return encodeNonce(w, now, st.machineID, 0), nil
			}
			continue
		}

		// Still within the same millisecond as currentTs. Width 64's
		// counter field is only 13 bits wide even though the packed
		// sub-counter is 22 bits; guard against wrapping it. 96- and
		// 128-bit nonces have counter fields wide enough that this can
		// never trigger (Open Question 2 in SPEC_FULL.md).
		if w == Width64 && newCount >= maxCount64 {
			continue
		}

		return encodeNonce(w, currentTs, st.machineID, newCount), nil
	}
}
