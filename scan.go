// Package simdcsv locates the structural characters of an RFC 4180 CSV
// document at SIMD speed.
//
// A scan processes the input in 64-byte blocks, reducing each block to a
// bitmask of unquoted commas and newlines, and flattens the masks into a
// flat index of byte offsets suitable for downstream field extraction. The
// quoted-string state machine is a single parity mask threaded from block to
// block; quote regions inside a block are recovered with a prefix-XOR (the
// carry-less multiply idiom). Record terminators are LF only; CR bytes pass
// through unmarked.
package simdcsv

import "bytes"

const (
	// blockSize is the number of input bytes reduced to one bitmask.
	blockSize = 64

	// blockHalf is one 256-bit SIMD lane.
	blockHalf = 32

	// batchBlocks is the number of blocks scanned before their masks are
	// flattened. Buffering separates the SIMD-heavy kernel from the
	// store-heavy flattener, improving instruction-level parallelism.
	// It does not change semantics.
	batchBlocks = 4
)

// scanState is the carry threaded from one block to the next.
type scanState struct {
	// prevInsideQuote is all-ones if the byte immediately before the
	// current block is inside a quoted region, all-zeros otherwise.
	prevInsideQuote uint64

	// prevEndsPseudoPred is reserved for pseudo-structural extensions.
	// It stays zero in the CSV core.
	prevEndsPseudoPred uint64
}

// findQuoteMask returns the quoted-region mask for one block and advances
// the carry. Bit k of the result is set iff the quote parity through byte k,
// carry included, is odd: an opening quote and the bytes after it are set,
// the matching closing quote is not. Doubled quotes ("") toggle the parity
// twice and need no special handling.
func findQuoteMask(quoteBits uint64, st *scanState) uint64 {
	region := prefixXOR(quoteBits) ^ st.prevInsideQuote
	st.prevInsideQuote = uint64(int64(region) >> 63)
	return region
}

// Variant reports the block kernel a scan will use: "avx512" or "scalar".
// The choice is made once per process and does not affect output.
func Variant() string {
	if hasSIMDKernel() {
		return "avx512"
	}
	return "scalar"
}

// FindIndexes scans the buffer and returns its structural index: the byte
// offset of every unquoted comma and unquoted newline, in document order.
//
// The buffer is borrowed for the duration of the call. Scanning the same
// buffer twice yields identical indexes. If the document ends inside a
// quoted region, a ParseError wrapping ErrUnterminatedQuote is returned.
func FindIndexes(buf *PaddedBuffer) (*ParsedCsv, error) {
	data := buf.Data()
	pcsv := NewParsedCsv(len(data)/10 + 16)
	st := scanState{}

	fullBlocks := len(data) / blockSize
	blk := 0

	// Batched main loop: scan batchBlocks blocks into a mask ring, then
	// flatten them all.
	var masks [batchBlocks]uint64
	for blk+batchBlocks <= fullBlocks {
		for b := 0; b < batchBlocks; b++ {
			off := (blk + b) * blockSize
			quote, comma, lf := maskBlock((*[blockSize]byte)(data[off:]))
			quoted := findQuoteMask(quote, &st)
			masks[b] = (comma | lf) &^ quoted
		}
		pcsv.reserve(batchBlocks * flattenSlack)
		for b := 0; b < batchBlocks; b++ {
			pcsv.flattenBits(uint32((blk+b)*blockSize), masks[b])
		}
		blk += batchBlocks
	}

	// Blocks that did not fill a batch.
	for ; blk < fullBlocks; blk++ {
		off := blk * blockSize
		quote, comma, lf := maskBlock((*[blockSize]byte)(data[off:]))
		quoted := findQuoteMask(quote, &st)
		pcsv.reserve(flattenSlack)
		pcsv.flattenBits(uint32(off), (comma|lf)&^quoted)
	}

	// Scalar tail over the remaining 0..63 bytes. Reads stay within the
	// logical length; padding is not consumed here.
	inQuote := st.prevInsideQuote != 0
	for i := fullBlocks * blockSize; i < len(data); i++ {
		switch data[i] {
		case '"':
			inQuote = !inQuote
		case ',', '\n':
			if !inQuote {
				pcsv.appendOffset(uint32(i))
			}
		}
	}

	if inQuote {
		// Odd quote parity at EOF: the last quote in the buffer is the
		// unmatched opener.
		off := len(data)
		if q := bytes.LastIndexByte(data, '"'); q >= 0 {
			off = q
		}
		return nil, &ParseError{Offset: off, Err: ErrUnterminatedQuote}
	}
	return pcsv, nil
}

// Parse copies data into a fresh padded buffer and scans it. Use
// FindIndexes with a caller-held PaddedBuffer to amortize the copy across
// repeated scans.
func Parse(data []byte) (*ParsedCsv, error) {
	return FindIndexes(NewPaddedBuffer(data))
}
