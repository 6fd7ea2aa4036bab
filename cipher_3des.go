// cipher_3des.go: Triple DES, CBC mode with a fixed zero IV over a single
// 8-byte block (spec §4.3). Unlike Blowfish and AES, this context is not
// pre-initialized — there is no key-schedule cost worth amortizing relative
// to the CBC setup, so des.NewTripleDESCipher is called once per
// Encrypt/Decrypt on the hot path; newTripleDESBlock, called at Init, only
// validates the key and keeps it.
package nonce

import (
	"crypto/cipher"

	"golang.org/x/crypto/des"
)

// tripleDESBlock adapts Triple-DES-CBC-with-zero-IV to the cipher.Block
// interface so it can sit alongside the pre-initialized AES/Blowfish
// contexts behind one type.
type tripleDESBlock struct {
	key []byte
}

func newTripleDESBlock(key []byte) (cipher.Block, error) {
	// Validate the key once, at construction, so a bad key fails at Init
	// rather than on the first nonce.
	if _, err := des.NewTripleDESCipher(key); err != nil {
		return nil, err
	}
	return &tripleDESBlock{key: key}, nil
}

func (t *tripleDESBlock) BlockSize() int { return des.BlockSize }

func (t *tripleDESBlock) Encrypt(dst, src []byte) {
	block, err := des.NewTripleDESCipher(t.key)
	if err != nil {
		panic(err) // key was already validated in newTripleDESBlock
	}
	iv := make([]byte, des.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(dst, src)
}

func (t *tripleDESBlock) Decrypt(dst, src []byte) {
	block, err := des.NewTripleDESCipher(t.key)
	if err != nil {
		panic(err)
	}
	iv := make([]byte, des.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(dst, src)
}
