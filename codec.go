// codec.go: the symmetric encrypt/decrypt codec (spec §4.4). These are
// inverses of each other under the factory's current key/cipher choice, and
// are only meaningful on blocks this factory emitted — there is no padding,
// authentication, or IV diversification, so they must never be used on
// arbitrary payloads (spec §1 Non-goals).
package nonce

// Encrypt encrypts a plaintext nonce of any supported width, inferring the
// width from len(n).
func Encrypt(name string, n []byte) ([]byte, error) {
	st, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return st.transform(n, true)
}

// Decrypt is the inverse of Encrypt.
func Decrypt(name string, n []byte) ([]byte, error) {
	st, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return st.transform(n, false)
}

func (st *State) transform(n []byte, encrypt bool) ([]byte, error) {
	w := widthFromLen(len(n))
	if w == 0 {
		return nil, NewErrInvalidWidth(len(n) * 8)
	}
	block := st.ciphers[w.index()]
	if block == nil {
		return nil, NewErrNoCipherConfigured(int(w))
	}

	blockLen := block.BlockSize()
	if blockLen != len(n) {
		// Narrow cipher under a wider nonce: the tail must already be the
		// zero padding EncryptedNonce would have produced.
		if !allZero(n[blockLen:]) {
			return nil, NewErrInvalidTail()
		}
	}

	out := make([]byte, len(n))
	if encrypt {
		block.Encrypt(out[:blockLen], n[:blockLen])
	} else {
		block.Decrypt(out[:blockLen], n[:blockLen])
	}
	return out, nil
}

// widthFromLen maps a byte length to its Width, or 0 if unsupported.
func widthFromLen(n int) Width {
	switch n {
	case 8:
		return Width64
	case 12:
		return Width96
	case 16:
		return Width128
	}
	return 0
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
