// errors.go: structured error kinds for the nonce factory.
//
// Error representation follows the agilira/go-errors convention used
// throughout the AGILira stack: a stable ErrorCode string, structured
// context fields, and goerrors.As-compatible interfaces for extracting the
// code.
package nonce

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes. All of these are programmer-error or configuration-failure
// kinds (spec §7); none are retryable, since there is no I/O or allocation
// on the hot path that could transiently fail.
const (
	ErrCodeFactoryNotInitialized  errors.ErrorCode = "NONCE_FACTORY_NOT_INITIALIZED"
	ErrCodeMachineIDOutOfRange    errors.ErrorCode = "NONCE_MACHINE_ID_OUT_OF_RANGE"
	ErrCodeBaseKeyTooSmall        errors.ErrorCode = "NONCE_BASE_KEY_TOO_SMALL"
	ErrCodeKeySizeMismatch        errors.ErrorCode = "NONCE_KEY_SIZE_MISMATCH"
	ErrCodeCipherUnsupportedWidth errors.ErrorCode = "NONCE_CIPHER_UNSUPPORTED_FOR_WIDTH"
	ErrCodeInvalidTail            errors.ErrorCode = "NONCE_INVALID_TAIL"
	ErrCodeTimestampOverflow      errors.ErrorCode = "NONCE_TIMESTAMP_OVERFLOW"
	ErrCodeSpeckUnavailable       errors.ErrorCode = "NONCE_SPECK_UNAVAILABLE"
	ErrCodeNoCipherConfigured     errors.ErrorCode = "NONCE_NO_CIPHER_CONFIGURED"
	ErrCodeInvalidWidth           errors.ErrorCode = "NONCE_INVALID_WIDTH"
)

const (
	msgFactoryNotInitialized  = "factory not initialized"
	msgMachineIDOutOfRange    = "machine id out of range [0, 511]"
	msgBaseKeyTooSmall        = "base key must be at least 256 bits"
	msgKeySizeMismatch        = "key size does not match cipher requirement"
	msgCipherUnsupportedWidth = "cipher is not supported for this nonce width"
	msgInvalidTail            = "nonce tail bits must be zero for this cipher/width combination"
	msgTimestampOverflow      = "epoch leaves no room for a 42-bit timestamp"
	msgSpeckUnavailable       = "speck cipher support is not compiled into this build"
	msgNoCipherConfigured     = "no cipher configured for this width"
	msgInvalidWidth           = "width must be one of 64, 96, 128"
)

// NewErrFactoryNotInitialized reports a call against a factory name that was
// never registered via Init.
func NewErrFactoryNotInitialized(name string) error {
	return errors.NewWithField(ErrCodeFactoryNotInitialized, msgFactoryNotInitialized, "name", name)
}

// NewErrMachineIDOutOfRange reports a MachineID outside [0, 511].
func NewErrMachineIDOutOfRange(machineID int) error {
	return errors.NewWithContext(ErrCodeMachineIDOutOfRange, msgMachineIDOutOfRange, map[string]interface{}{
		"provided_machine_id": machineID,
		"valid_range":         "0-511",
	})
}

// NewErrBaseKeyTooSmall reports a BaseKey shorter than 256 bits.
func NewErrBaseKeyTooSmall(sizeBits int) error {
	return errors.NewWithContext(ErrCodeBaseKeyTooSmall, msgBaseKeyTooSmall, map[string]interface{}{
		"provided_bits": sizeBits,
		"minimum_bits":  256,
	})
}

// NewErrKeySizeMismatch reports a per-width key override whose length does
// not match what the selected cipher requires.
func NewErrKeySizeMismatch(cipher string, gotBits, wantBits int) error {
	return errors.NewWithContext(ErrCodeKeySizeMismatch, msgKeySizeMismatch, map[string]interface{}{
		"cipher":        cipher,
		"provided_bits": gotBits,
		"required_bits": wantBits,
	})
}

// NewErrCipherUnsupportedWidth reports an (algorithm, width) combination
// that is not defined, e.g. AES requested for a 64-bit nonce.
func NewErrCipherUnsupportedWidth(cipher string, width int) error {
	return errors.NewWithContext(ErrCodeCipherUnsupportedWidth, msgCipherUnsupportedWidth, map[string]interface{}{
		"cipher": cipher,
		"width":  width,
	})
}

// NewErrInvalidTail reports a 96-bit nonce whose 32-bit tail is non-zero
// when a 64-bit cipher (Blowfish or Triple DES) is in use.
func NewErrInvalidTail() error {
	return errors.NewWithField(ErrCodeInvalidTail, msgInvalidTail, "width", 96)
}

// NewErrTimestampOverflow reports an epoch so old that a 42-bit timestamp
// has no headroom left at Init time.
func NewErrTimestampOverflow(initAtMs uint64) error {
	return errors.NewWithField(ErrCodeTimestampOverflow, msgTimestampOverflow, "init_at_ms", initAtMs)
}

// NewErrSpeckUnavailable reports that Speck was selected but no Speck
// implementation is linked into this build.
func NewErrSpeckUnavailable(width int) error {
	return errors.NewWithField(ErrCodeSpeckUnavailable, msgSpeckUnavailable, "width", width)
}

// NewErrNoCipherConfigured reports encrypt/decrypt/EncryptedNonce called
// against a width with no cipher initialized.
func NewErrNoCipherConfigured(width int) error {
	return errors.NewWithField(ErrCodeNoCipherConfigured, msgNoCipherConfigured, "width", width)
}

// NewErrInvalidWidth reports a width outside {64, 96, 128}.
func NewErrInvalidWidth(width int) error {
	return errors.NewWithField(ErrCodeInvalidWidth, msgInvalidWidth, "width", width)
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code errors.ErrorCode) bool {
	return errors.HasCode(err, code)
}

// ErrorCode extracts the structured code from an error produced by this
// package, or "" if err is nil or was not produced here.
func ErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
