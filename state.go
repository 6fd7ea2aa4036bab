// state.go: factory state and Init (spec §3, §6).
package nonce

import (
	"crypto/cipher"
	"sync/atomic"

	"github.com/nonceforge/nonce/internal/registry"
)

var factories registry.Registry[*State]

// Options configures a new factory at Init.
type Options struct {
	// MachineID identifies this node within the fleet. Required, [0, 511].
	MachineID int

	// Name is the registry key. Defaults to DefaultName ("default").
	Name string

	// EpochMs overrides the default epoch (2025-01-01T00:00:00Z), in
	// milliseconds since the Unix epoch. Nil means "use the default."
	EpochMs *int64

	// BaseKey, if present, must be at least 256 bits. It is the PBKDF2
	// input used to derive any per-width key that isn't explicitly
	// overridden below. If neither BaseKey nor a width's override key is
	// given, that width gets no cipher and EncryptedNonce/Encrypt/Decrypt
	// fail with NoCipherConfigured for it.
	BaseKey []byte

	// Key64, Key96, Key128 override the derived key for their width. Each
	// must match the selected cipher's documented key length exactly.
	Key64, Key96, Key128 []byte

	// Cipher64, Cipher96 choose between CipherBlowfish (default),
	// CipherTripleDES, and CipherSpeck. Cipher128 chooses between
	// CipherAES (default) and CipherSpeck.
	Cipher64, Cipher96, Cipher128 CipherKind

	// KDFIterations overrides the PBKDF2 iteration count. Defaults to
	// DefaultKDFIterations (50,000). Once a name is registered, nothing in
	// this package ever changes the iteration count a deployment was
	// initialized with.
	KDFIterations int

	// Logger receives the timestamp-overflow warning, if any. Defaults to
	// NoOpLogger.
	Logger Logger
}

// State is the immutable-after-Init record backing one named factory.
// Every field except counters is fixed for the life of the process; the two
// atomic counter slots are the only mutable state (spec §5).
type State struct {
	name              string
	machineID         uint16
	epochMs           int64
	initAtMs          uint64
	monoEpochOffsetMs int64
	kdfIterations     int
	logger            Logger

	// counters[0] backs Nonce (counter-nonce); counters[1] backs
	// SortableNonce, packed as (timestamp:42 | count:22).
	counters [2]atomic.Uint64

	// ciphers and cipherKinds are indexed by Width.index(). A nil block
	// means that width has no cipher configured.
	ciphers     [3]cipher.Block
	cipherKinds [3]CipherKind
}

// Init creates and registers a new factory under opts.Name (or DefaultName).
// Registering twice under the same name atomically replaces the prior
// state; existing Nonce/SortableNonce callers using the old *State keep
// working against the state they already hold.
func Init(opts Options) error {
	if opts.MachineID < 0 || opts.MachineID > 511 {
		return NewErrMachineIDOutOfRange(opts.MachineID)
	}
	if opts.BaseKey != nil && len(opts.BaseKey)*8 < 256 {
		return NewErrBaseKeyTooSmall(len(opts.BaseKey) * 8)
	}

	epochMs := DefaultEpoch.UnixMilli()
	if opts.EpochMs != nil {
		epochMs = *opts.EpochMs
	}

	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoOpLogger{}
	}

	iterations := opts.KDFIterations
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}

	currentMs := int64(nowMillis())
	initAtMs := uint64(currentMs - epochMs)

	remainingMs := int64(1<<TimestampBits) - int64(initAtMs)
	remainingDays := remainingMs / 86_400_000
	if remainingDays <= 0 {
		return NewErrTimestampOverflow(initAtMs)
	}
	if remainingDays <= 365 {
		logger.Warn("nonce: epoch approaching 42-bit timestamp horizon", "overflow_in_days", remainingDays)
	}

	st := &State{
		name:              name,
		machineID:         uint16(opts.MachineID),
		epochMs:           epochMs,
		initAtMs:          initAtMs,
		monoEpochOffsetMs: -epochMs,
		kdfIterations:     iterations,
		logger:            logger,
	}
	st.counters[0].Store(^uint64(0)) // I5: first fetch-add(1) yields 0
	st.counters[1].Store(initAtMs << sortableCounterBits)

	cipherSpecs := [3]struct {
		kind     CipherKind
		override []byte
	}{
		{orDefault(opts.Cipher64, Width64), opts.Key64},
		{orDefault(opts.Cipher96, Width96), opts.Key96},
		{orDefault(opts.Cipher128, Width128), opts.Key128},
	}
	widths := [3]Width{Width64, Width96, Width128}
	for i, spec := range cipherSpecs {
		block, err := initCipherForWidth(spec.kind, widths[i], spec.override, opts.BaseKey, iterations)
		if err != nil {
			return err
		}
		st.ciphers[i] = block
		st.cipherKinds[i] = spec.kind
	}

	factories.Register(name, st)
	return nil
}

func orDefault(kind CipherKind, w Width) CipherKind {
	if kind == CipherNone {
		return defaultCipherKind(w)
	}
	return kind
}

// lookup resolves a registered factory by name, or FactoryNotInitialized.
func lookup(name string) (*State, error) {
	if name == "" {
		name = DefaultName
	}
	st, ok := factories.Lookup(name)
	if !ok {
		return nil, NewErrFactoryNotInitialized(name)
	}
	return st, nil
}
