package nonce_test

import (
	"testing"
	"time"

	"github.com/nonceforge/nonce"
)

type capturingLogger struct {
	warnings []string
}

func (l *capturingLogger) Debug(string, ...interface{}) {}
func (l *capturingLogger) Info(string, ...interface{})  {}
func (l *capturingLogger) Error(string, ...interface{}) {}
func (l *capturingLogger) Warn(msg string, keyvals ...interface{}) {
	l.warnings = append(l.warnings, msg)
}

func TestInitMachineIDBoundaries(t *testing.T) {
	// B1: 0 and 511 succeed, -1 and 512 fail.
	if err := nonce.Init(nonce.Options{MachineID: 0, Name: t.Name() + "/zero"}); err != nil {
		t.Fatalf("machine_id=0 should succeed: %v", err)
	}
	if err := nonce.Init(nonce.Options{MachineID: 511, Name: t.Name() + "/max"}); err != nil {
		t.Fatalf("machine_id=511 should succeed: %v", err)
	}
	if err := nonce.Init(nonce.Options{MachineID: -1, Name: t.Name() + "/neg"}); err == nil {
		t.Fatal("machine_id=-1 should fail")
	} else if !nonce.IsCode(err, nonce.ErrCodeMachineIDOutOfRange) {
		t.Fatalf("expected MachineIdOutOfRange, got %v", err)
	}
	if err := nonce.Init(nonce.Options{MachineID: 512, Name: t.Name() + "/over"}); err == nil {
		t.Fatal("machine_id=512 should fail")
	} else if !nonce.IsCode(err, nonce.ErrCodeMachineIDOutOfRange) {
		t.Fatalf("expected MachineIdOutOfRange, got %v", err)
	}
}

func TestInitTimestampOverflow(t *testing.T) {
	// B3: epoch = now - 2^42 ms must fail init.
	epochMs := time.Now().UnixMilli() - (int64(1) << 42)
	err := nonce.Init(nonce.Options{MachineID: 1, Name: t.Name(), EpochMs: &epochMs})
	if err == nil {
		t.Fatal("expected TimestampOverflow")
	}
	if !nonce.IsCode(err, nonce.ErrCodeTimestampOverflow) {
		t.Fatalf("expected TimestampOverflow, got %v", err)
	}
}

func TestInitTimestampOverflowWarning(t *testing.T) {
	// B4: epoch = now - (2^42 - 1 day) must warn, not fail.
	oneDayMs := int64(86_400_000)
	epochMs := time.Now().UnixMilli() - (int64(1)<<42 - oneDayMs)
	logger := &capturingLogger{}
	err := nonce.Init(nonce.Options{MachineID: 1, Name: t.Name(), EpochMs: &epochMs, Logger: logger})
	if err != nil {
		t.Fatalf("expected success with a warning, got %v", err)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(logger.warnings))
	}
}

func TestInitBaseKeyTooSmall(t *testing.T) {
	err := nonce.Init(nonce.Options{MachineID: 1, Name: t.Name(), BaseKey: make([]byte, 16)})
	if err == nil {
		t.Fatal("expected BaseKeyTooSmall")
	}
	if !nonce.IsCode(err, nonce.ErrCodeBaseKeyTooSmall) {
		t.Fatalf("expected BaseKeyTooSmall, got %v", err)
	}
}

func TestNonceBeforeInit(t *testing.T) {
	_, err := nonce.Nonce("never-initialized-factory", nonce.Width64)
	if err == nil {
		t.Fatal("expected FactoryNotInitialized")
	}
	if !nonce.IsCode(err, nonce.ErrCodeFactoryNotInitialized) {
		t.Fatalf("expected FactoryNotInitialized, got %v", err)
	}
}

func TestScenario1BasicNonce(t *testing.T) {
	// Scenario 1: init, sleep 100ms, nonce(64) decodes to a timestamp within
	// [birth, birth+200] (counter-nonce timestamps are pinned to the
	// factory's own birth time, not wall-clock-at-decode), machine_id=1,
	// counter=0. The default epoch (2025-01-01) is long past by any run
	// date, so the assertion is relative to the factory's own InitAtMsForTest
	// value rather than a literal [0,200] window.
	if err := nonce.Init(nonce.Options{MachineID: 1, Name: t.Name()}); err != nil {
		t.Fatal(err)
	}
	initAt, err := nonce.InitAtMsForTest(t.Name())
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	n, err := nonce.Nonce(t.Name(), nonce.Width64)
	if err != nil {
		t.Fatal(err)
	}
	if len(n) != 8 {
		t.Fatalf("expected 8 bytes, got %d", len(n))
	}
	ts, machineID, counter := nonce.DecodeForTest(nonce.Width64, n)
	if ts < initAt || ts > initAt+200 {
		t.Fatalf("expected timestamp in [%d,%d], got %d", initAt, initAt+200, ts)
	}
	if machineID != 1 {
		t.Fatalf("expected machine_id=1, got %d", machineID)
	}
	if counter != 0 {
		t.Fatalf("expected counter=0, got %d", counter)
	}
}

func TestRegistryReplacesAtomically(t *testing.T) {
	name := t.Name()
	if err := nonce.Init(nonce.Options{MachineID: 1, Name: name}); err != nil {
		t.Fatal(err)
	}
	if err := nonce.Init(nonce.Options{MachineID: 2, Name: name}); err != nil {
		t.Fatal(err)
	}
	n, err := nonce.Nonce(name, nonce.Width64)
	if err != nil {
		t.Fatal(err)
	}
	_, machineID, _ := nonce.DecodeForTest(nonce.Width64, n)
	if machineID != 2 {
		t.Fatalf("expected the second Init to win, got machine_id=%d", machineID)
	}
}
