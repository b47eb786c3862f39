//go:build goexperiment.simd && amd64

package simdcsv

import (
	"unsafe"

	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// =============================================================================
// AVX-512 Block Kernel
// =============================================================================
//
// NOTE: The simd/archsimd package in Go 1.26 is an experimental feature
// enabled via GOEXPERIMENT=simd. It is AMD64-specific.
// See: https://github.com/golang/go/issues/73787 (archsimd proposal)
//
// NOTE: archsimd.Int8x32.Equal().ToBits() internally uses the VPMOVB2M
// instruction (AVX-512BW), which raises SIGILL on CPUs without AVX-512.
// The runtime probe below gates every use of this kernel; CPUs without the
// required features take the scalar kernel with identical semantics.
//
// TODO: Replace golang.org/x/sys/cpu usage with an official archsimd API
// (e.g. archsimd.HasAVX512()) when one exists; as of Go 1.26 the archsimd
// package provides no CPU feature detection.

// useAVX512 indicates whether the AVX-512 kernel is usable at runtime.
// Set once at init and read-only afterwards.
//
// NOTE: All three feature flags are required:
//   - AVX512F: Foundation 512-bit vector operations
//   - AVX512BW: Byte/word granularity operations (ToBits() uses VPMOVB2M)
//   - AVX512VL: 128/256-bit vector support with AVX-512 instructions
var useAVX512 bool

func init() {
	useAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
}

func hasSIMDKernel() bool {
	return useAVX512
}

// maskBlock computes the structural character bitmasks for one 64-byte
// block, dispatching to the AVX-512 kernel when available.
func maskBlock(block *[blockSize]byte) (quote, comma, lf uint64) {
	if useAVX512 {
		return maskBlockAVX512(block)
	}
	return maskBlockScalar(block)
}

// maskBlockAVX512 computes the quote, comma and newline bitmasks for one
// 64-byte block using two 256-bit lanes.
func maskBlockAVX512(block *[blockSize]byte) (quote, comma, lf uint64) {
	quoteCmp := archsimd.BroadcastInt8x32('"')
	commaCmp := archsimd.BroadcastInt8x32(',')
	lfCmp := archsimd.BroadcastInt8x32('\n')

	lo := archsimd.LoadInt8x32((*[blockHalf]int8)(unsafe.Pointer(&block[0])))
	quoteLo := lo.Equal(quoteCmp).ToBits()
	commaLo := lo.Equal(commaCmp).ToBits()
	lfLo := lo.Equal(lfCmp).ToBits()

	hi := archsimd.LoadInt8x32((*[blockHalf]int8)(unsafe.Pointer(&block[blockHalf])))
	quoteHi := hi.Equal(quoteCmp).ToBits()
	commaHi := hi.Equal(commaCmp).ToBits()
	lfHi := hi.Equal(lfCmp).ToBits()

	quote = uint64(quoteLo) | (uint64(quoteHi) << blockHalf)
	comma = uint64(commaLo) | (uint64(commaHi) << blockHalf)
	lf = uint64(lfLo) | (uint64(lfHi) << blockHalf)

	return
}
