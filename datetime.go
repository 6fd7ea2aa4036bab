// datetime.go: recovering a wall-clock time from a sortable nonce's leading
// 42 bits (spec §6, get_datetime).
package nonce

import "time"

// GetDatetime decodes the timestamp prefix of a nonce (typically one
// produced by SortableNonce) into a UTC time, relative to the named
// factory's epoch.
func GetDatetime(name string, n []byte) (time.Time, error) {
	st, err := lookup(name)
	if err != nil {
		return time.Time{}, err
	}
	w := widthFromLen(len(n))
	if w == 0 {
		return time.Time{}, NewErrInvalidWidth(len(n) * 8)
	}
	ts, _, _ := decodeNonce(w, n)
	return time.UnixMilli(st.epochMs + int64(ts)).UTC(), nil
}
