// Package nonce implements a locally-unique nonce factory: a lock-free
// generator of 64-, 96-, or 128-bit identifiers that are guaranteed unique
// within a bounded fleet of machines, at sustained rates far beyond what a
// mutex-guarded counter could sustain.
//
// # Overview
//
// A nonce is a fixed-width bit string carrying a millisecond timestamp
// relative to a configurable epoch, a 9-bit machine identifier, and a
// per-machine monotonic counter. Three variants are offered:
//
//   - Counter nonces ([Nonce]): fastest, one atomic fetch-add per call.
//   - Sortable nonces ([SortableNonce]): the leading 42 bits equal the true
//     wall-clock time at emission, so byte-lexicographic order matches time
//     order across a cluster.
//   - Encrypted nonces ([EncryptedNonce]): a counter or sortable nonce run
//     through a width-matched block cipher, unique and unpredictable.
//
// # Quick start
//
//	err := nonce.Init(nonce.Options{
//	    MachineID: 7,
//	    BaseKey:   myBaseKey, // only needed for EncryptedNonce
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := nonce.Nonce(nonce.DefaultName, nonce.Width64)
//
// # Scope
//
// This package does not resolve a machine ID from a hostname or gossip
// protocol, does not guarantee uniqueness across independent deployments,
// and is not UUID-compatible. Its encryption primitives are a bit-preserving
// bijection intended only for nonces this package emitted — they are not a
// general-purpose authenticated cipher.
package nonce
