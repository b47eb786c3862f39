package simdcsv

import "iter"

// minIndexChunk is the minimum number of entries added per index growth,
// amortizing allocation cost on small documents.
const minIndexChunk = 1024

// ParsedCsv holds the structural index produced by a scan: the ordered byte
// offsets of every unquoted comma and newline in the input, in document
// order. Offsets are strictly increasing.
type ParsedCsv struct {
	indexes []uint32
}

// NewParsedCsv returns an empty index with room for capacity entries.
func NewParsedCsv(capacity int) *ParsedCsv {
	if capacity < 0 {
		capacity = 0
	}
	return &ParsedCsv{indexes: make([]uint32, 0, capacity)}
}

// Len returns the number of structural offsets in the index.
func (p *ParsedCsv) Len() int {
	return len(p.indexes)
}

// At returns the k-th structural offset. It panics if k is out of range.
func (p *ParsedCsv) At(k int) uint32 {
	return p.indexes[k]
}

// Offsets returns the underlying offset slice. The slice is borrowed: it
// remains valid until the ParsedCsv is garbage collected and must not be
// modified.
func (p *ParsedCsv) Offsets() []uint32 {
	return p.indexes
}

// All returns an iterator over the structural offsets in document order.
func (p *ParsedCsv) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, off := range p.indexes {
			if !yield(off) {
				return
			}
		}
	}
}

// reserve ensures capacity for at least n additional entries. Growth is
// geometric (1.5x) with a minIndexChunk floor.
func (p *ParsedCsv) reserve(n int) {
	need := len(p.indexes) + n
	if need <= cap(p.indexes) {
		return
	}
	newCap := cap(p.indexes) + cap(p.indexes)/2
	if minGrown := cap(p.indexes) + minIndexChunk; newCap < minGrown {
		newCap = minGrown
	}
	if newCap < need {
		newCap = need
	}
	grown := make([]uint32, len(p.indexes), newCap)
	copy(grown, p.indexes)
	p.indexes = grown
}

// appendOffset appends a single offset, growing the index if needed.
func (p *ParsedCsv) appendOffset(off uint32) {
	p.reserve(1)
	p.indexes = append(p.indexes, off)
}
