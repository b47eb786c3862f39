package simdcsv

import "testing"

func TestParsedCsvAccessors(t *testing.T) {
	p := NewParsedCsv(4)
	for _, off := range []uint32{1, 3, 5} {
		p.appendOffset(off)
	}

	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if got := p.At(1); got != 3 {
		t.Errorf("At(1) = %d, want 3", got)
	}

	want := []uint32{1, 3, 5}
	offs := p.Offsets()
	for i, w := range want {
		if offs[i] != w {
			t.Errorf("Offsets()[%d] = %d, want %d", i, offs[i], w)
		}
	}

	i := 0
	for off := range p.All() {
		if off != want[i] {
			t.Errorf("All() element %d = %d, want %d", i, off, want[i])
		}
		i++
	}
	if i != len(want) {
		t.Errorf("All() yielded %d elements, want %d", i, len(want))
	}
}

func TestParsedCsvAllEarlyStop(t *testing.T) {
	p := NewParsedCsv(0)
	for i := uint32(0); i < 10; i++ {
		p.appendOffset(i)
	}
	n := 0
	for range p.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("stopped after %d elements, want 3", n)
	}
}

func TestReserveGrowth(t *testing.T) {
	p := NewParsedCsv(0)

	// First growth honors the minimum chunk.
	p.reserve(1)
	if cap(p.indexes) < minIndexChunk {
		t.Errorf("cap after first reserve = %d, want at least %d", cap(p.indexes), minIndexChunk)
	}

	// A large reservation is satisfied in one step.
	p.reserve(10 * minIndexChunk)
	if cap(p.indexes) < 10*minIndexChunk {
		t.Errorf("cap = %d, want at least %d", cap(p.indexes), 10*minIndexChunk)
	}

	// Reserving within capacity does not reallocate.
	before := cap(p.indexes)
	p.reserve(1)
	if cap(p.indexes) != before {
		t.Errorf("cap changed from %d to %d on a no-op reserve", before, cap(p.indexes))
	}
}

func TestReserveKeepsContents(t *testing.T) {
	p := NewParsedCsv(0)
	for i := uint32(0); i < 100; i++ {
		p.appendOffset(i * 7)
	}
	p.reserve(5 * minIndexChunk)
	for i := 0; i < 100; i++ {
		if p.At(i) != uint32(i)*7 {
			t.Fatalf("At(%d) = %d after growth, want %d", i, p.At(i), i*7)
		}
	}
}
