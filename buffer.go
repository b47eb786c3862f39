package simdcsv

import (
	"fmt"
	"io"
	"os"
	"unsafe"
)

// Padding is the number of zero bytes guaranteed to follow the logical end
// of a PaddedBuffer's allocation.
//
// The padding is what makes unconditional 64-byte block reads safe: a block
// that straddles the logical end sees only zero bytes beyond it, which match
// no structural character and toggle no quote state. FindIndexes itself
// loads only blocks that lie wholly inside the logical length and scans the
// remaining bytes one at a time. Callers allocating buffers themselves must
// preserve this contract; it must not be optimized away.
const Padding = 64

// bufferAlignment is the required alignment of the buffer base (cache line).
const bufferAlignment = 64

// PaddedBuffer is an immutable byte view whose backing allocation extends at
// least Padding zero bytes past the logical length and whose base address is
// 64-byte aligned.
//
// The buffer is borrowed immutably by a scan for its duration; the caller
// must not mutate it until the scan returns.
type PaddedBuffer struct {
	raw  []byte // full allocation, keeps the backing array alive
	data []byte // aligned view of length Len()+Padding
	n    int    // logical length
}

// newPaddedAlloc returns an aligned, zeroed allocation with room for n
// logical bytes plus padding. The alignment trick over-allocates and slices
// at the first aligned offset.
func newPaddedAlloc(n int) *PaddedBuffer {
	raw := make([]byte, n+Padding+bufferAlignment-1)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	off := (bufferAlignment - int(addr&(bufferAlignment-1))) & (bufferAlignment - 1)
	return &PaddedBuffer{
		raw:  raw,
		data: raw[off : off+n+Padding],
		n:    n,
	}
}

// NewPaddedBuffer copies data into a freshly allocated padded buffer.
func NewPaddedBuffer(data []byte) *PaddedBuffer {
	b := newPaddedAlloc(len(data))
	copy(b.data, data)
	return b
}

// LoadFile reads the named file into a padded buffer.
func LoadFile(path string) (*PaddedBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat file %q: %w", path, err)
	}

	b := newPaddedAlloc(int(st.Size()))
	if _, err := io.ReadFull(f, b.Data()); err != nil {
		return nil, fmt.Errorf("could not read file %q: %w", path, err)
	}
	return b, nil
}

// Data returns the logical bytes of the buffer, excluding padding.
func (b *PaddedBuffer) Data() []byte {
	return b.data[:b.n:b.n]
}

// Len returns the logical length of the buffer.
func (b *PaddedBuffer) Len() int {
	return b.n
}

// CheckContract verifies the alignment and zeroed-padding invariants.
// Violations are programmer errors; the scan hot path does not re-check.
func (b *PaddedBuffer) CheckContract() error {
	if b.n > 0 || len(b.data) > 0 {
		if addr := uintptr(unsafe.Pointer(&b.data[0])); addr&(bufferAlignment-1) != 0 {
			return fmt.Errorf("buffer base %#x is not %d-byte aligned", addr, bufferAlignment)
		}
	}
	if len(b.data)-b.n < Padding {
		return fmt.Errorf("buffer has %d padding bytes, need at least %d", len(b.data)-b.n, Padding)
	}
	for i, c := range b.data[b.n:] {
		if c != 0 {
			return fmt.Errorf("padding byte %d is %#x, want 0", i, c)
		}
	}
	return nil
}
