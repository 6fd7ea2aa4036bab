// cipher.go: width-matched block cipher dispatch (spec §4.3).
package nonce

import (
	"crypto/aes"
	"crypto/cipher"
	"strconv"

	"golang.org/x/crypto/blowfish"
)

// CipherKind names a block cipher algorithm a factory can use for a given
// width.
type CipherKind string

const (
	// CipherNone means "no cipher configured for this width."
	CipherNone CipherKind = ""
	// CipherBlowfish is the 64-bit-block default for widths 64 and 96.
	CipherBlowfish CipherKind = "blowfish"
	// CipherTripleDES is a 64-bit-block alternative for widths 64 and 96.
	CipherTripleDES CipherKind = "tripledes"
	// CipherAES is the 128-bit-block default for width 128.
	CipherAES CipherKind = "aes"
	// CipherSpeck is accepted by the API but always fails cipher
	// initialization: no Speck implementation was found anywhere in the
	// corpus this module was grounded on (see DESIGN.md). Selecting it
	// raises SpeckUnavailable, exactly the configuration failure spec.md
	// §6/§7 already documents for this situation.
	CipherSpeck CipherKind = "speck"
)

// defaultCipherKind returns the documented default cipher for a width.
func defaultCipherKind(w Width) CipherKind {
	switch w {
	case Width64, Width96:
		return CipherBlowfish
	case Width128:
		return CipherAES
	}
	return CipherNone
}

// validCipherForWidth reports whether kind may be selected for width w.
func validCipherForWidth(kind CipherKind, w Width) bool {
	switch w {
	case Width64, Width96:
		return kind == CipherBlowfish || kind == CipherTripleDES || kind == CipherSpeck
	case Width128:
		return kind == CipherAES || kind == CipherSpeck
	}
	return false
}

// keyBits returns the documented key length, in bits, that kind requires at
// width w. ok is false if the combination is not defined.
func keyBits(kind CipherKind, w Width) (bits int, ok bool) {
	switch kind {
	case CipherBlowfish:
		return 128, true
	case CipherTripleDES:
		return 192, true
	case CipherAES:
		return 256, true
	case CipherSpeck:
		switch w {
		case Width64:
			return 128, true
		case Width96:
			return 144, true
		case Width128:
			return 256, true
		}
	}
	return 0, false
}

// cipherLabel is the PBKDF2 salt for a (kind, width) pair, e.g. "blowfish64",
// "aes128". It is stable across releases: changing it would silently
// re-derive different keys for existing deployments.
func cipherLabel(kind CipherKind, w Width) string {
	return string(kind) + strconv.Itoa(int(w))
}

// newCipherBlock constructs the cipher.Block for a validated (kind, key)
// pair. Speck is rejected earlier, in initCipherForWidth.
func newCipherBlock(kind CipherKind, key []byte) (cipher.Block, error) {
	switch kind {
	case CipherBlowfish:
		return blowfish.NewCipher(key)
	case CipherTripleDES:
		return newTripleDESBlock(key)
	case CipherAES:
		return aes.NewCipher(key)
	}
	return nil, NewErrCipherUnsupportedWidth(string(kind), 0)
}
