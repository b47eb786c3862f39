//go:build !goexperiment.simd || !amd64

package simdcsv

// Builds without GOEXPERIMENT=simd (or on non-amd64) use the scalar block
// kernel. Output is identical to the AVX-512 kernel.

func hasSIMDKernel() bool {
	return false
}

func maskBlock(block *[blockSize]byte) (quote, comma, lf uint64) {
	return maskBlockScalar(block)
}
