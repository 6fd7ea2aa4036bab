package nonce_test

import (
	"bytes"
	"sort"
	"sync"
	"testing"

	"github.com/nonceforge/nonce"
)

func TestSortableNonceMonotonicWithinThread(t *testing.T) {
	name := t.Name()
	if err := nonce.Init(nonce.Options{MachineID: 5, Name: name}); err != nil {
		t.Fatal(err)
	}

	const total = 10_000
	var prevTs uint64
	for i := 0; i < total; i++ {
		n, err := nonce.SortableNonce(name, nonce.Width64)
		if err != nil {
			t.Fatal(err)
		}
		ts, machineID, _ := nonce.DecodeForTest(nonce.Width64, n)
		if machineID != 5 {
			t.Fatalf("expected machine_id=5, got %d", machineID)
		}
		if ts < prevTs {
			t.Fatalf("timestamp went backwards: %d -> %d", prevTs, ts)
		}
		prevTs = ts
	}
}

// P6: if sortable_nonce(a) returns before sortable_nonce(b) on the same
// thread, a <= b bytewise.
func TestSortableNonceBytewiseOrdered(t *testing.T) {
	name := t.Name()
	if err := nonce.Init(nonce.Options{MachineID: 6, Name: name}); err != nil {
		t.Fatal(err)
	}

	var prev []byte
	for i := 0; i < 5_000; i++ {
		n, err := nonce.SortableNonce(name, nonce.Width64)
		if err != nil {
			t.Fatal(err)
		}
		if prev != nil && bytes.Compare(prev, n) > 0 {
			t.Fatalf("nonce %x is not >= previous %x", n, prev)
		}
		prev = n
	}
}

// Scenario 6: 16 threads x 10,000 sortable nonces each, all unique, and each
// thread's own sequence has non-decreasing timestamp prefixes.
func TestSortableNonceConcurrentUniqueness(t *testing.T) {
	name := t.Name()
	if err := nonce.Init(nonce.Options{MachineID: 7, Name: name}); err != nil {
		t.Fatal(err)
	}

	const goroutines = 16
	const perGoroutine = 10_000

	type result struct {
		nonces [][]byte
	}
	results := make([]result, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			local := make([][]byte, 0, perGoroutine)
			var prevTs uint64
			for i := 0; i < perGoroutine; i++ {
				n, err := nonce.SortableNonce(name, nonce.Width64)
				if err != nil {
					t.Error(err)
					return
				}
				ts, _, _ := nonce.DecodeForTest(nonce.Width64, n)
				if ts < prevTs {
					t.Errorf("goroutine %d: timestamp went backwards", g)
					return
				}
				prevTs = ts
				local = append(local, n)
			}
			results[g].nonces = local
		}(g)
	}
	wg.Wait()

	seen := make(map[string]bool, goroutines*perGoroutine)
	for _, r := range results {
		for _, n := range r.nonces {
			key := string(n)
			if seen[key] {
				t.Fatalf("collision on nonce %x", n)
			}
			seen[key] = true
		}
	}
	if len(seen) != goroutines*perGoroutine {
		t.Fatalf("expected %d unique nonces, got %d", goroutines*perGoroutine, len(seen))
	}
}

func TestSortableNonceWidths(t *testing.T) {
	name := t.Name()
	if err := nonce.Init(nonce.Options{MachineID: 8, Name: name}); err != nil {
		t.Fatal(err)
	}
	widths := []nonce.Width{nonce.Width64, nonce.Width96, nonce.Width128}
	for _, w := range widths {
		n, err := nonce.SortableNonce(name, w)
		if err != nil {
			t.Fatalf("width %d: %v", w, err)
		}
		if len(n) != int(w)/8 {
			t.Fatalf("width %d: expected %d bytes, got %d", w, int(w)/8, len(n))
		}
	}
}

// sort.SliceIsSorted smoke test: a small batch emitted in sequence is
// already in bytewise-sorted order, so the encoding keeps lexicographic order.
func TestSortableNonceSortStable(t *testing.T) {
	name := t.Name()
	if err := nonce.Init(nonce.Options{MachineID: 9, Name: name}); err != nil {
		t.Fatal(err)
	}
	batch := make([][]byte, 200)
	for i := range batch {
		n, err := nonce.SortableNonce(name, nonce.Width64)
		if err != nil {
			t.Fatal(err)
		}
		batch[i] = n
	}
	if !sort.SliceIsSorted(batch, func(i, j int) bool {
		return bytes.Compare(batch[i], batch[j]) < 0
	}) {
		t.Fatal("emitted nonces are not already in sorted order")
	}
}
