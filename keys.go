// keys.go: PBKDF2-HMAC-SHA256 key derivation and per-width cipher
// initialization (spec §4.3).
package nonce

import (
	"crypto/cipher"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// resolveKey returns the key bytes a width's cipher should use: an explicit
// override if one was given, otherwise a PBKDF2-derived key from baseKey, or
// nil if neither is available (meaning this width gets no cipher at all).
func resolveKey(kind CipherKind, w Width, override, baseKey []byte, iterations int) ([]byte, error) {
	bits, ok := keyBits(kind, w)
	if !ok {
		return nil, NewErrCipherUnsupportedWidth(string(kind), int(w))
	}
	wantBytes := bits / 8

	if override != nil {
		if len(override)*8 != bits {
			return nil, NewErrKeySizeMismatch(string(kind), len(override)*8, bits)
		}
		return override, nil
	}

	if baseKey == nil {
		return nil, nil
	}

	label := cipherLabel(kind, w)
	return pbkdf2.Key(baseKey, []byte(label), iterations, wantBytes, sha256.New), nil
}

// initCipherForWidth builds the cipher.Block for one width, or returns
// (nil, nil) when no key material was supplied for that width — an
// unconfigured cipher is not an error at Init, only at first use.
func initCipherForWidth(kind CipherKind, w Width, override, baseKey []byte, iterations int) (cipher.Block, error) {
	if kind == CipherNone {
		return nil, nil
	}
	if !validCipherForWidth(kind, w) {
		return nil, NewErrCipherUnsupportedWidth(string(kind), int(w))
	}
	if kind == CipherSpeck {
		return nil, NewErrSpeckUnavailable(int(w))
	}

	key, err := resolveKey(kind, w, override, baseKey, iterations)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, nil
	}
	return newCipherBlock(kind, key)
}
