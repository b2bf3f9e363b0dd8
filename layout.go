package arena

import (
	"math/bits"
	"unsafe"
)

// isPowerOfTwo reports whether align is a nonzero power of two, the only
// alignments the bump primitive accepts.
func isPowerOfTwo(align uintptr) bool {
	return align != 0 && align&(align-1) == 0
}

// addOverflows reports whether a+b would overflow uintptr.
func addOverflows(a, b uintptr) bool {
	return a > ^uintptr(0)-b
}

// roundUpPow2 returns the smallest power of two >= n, or 1 if n is 0.
func roundUpPow2(n uintptr) uintptr {
	if n <= 1 {
		return 1
	}
	return uintptr(1) << bits.Len(uint(n-1))
}

// memmove copies n bytes from src to dst, correctly handling overlap (the
// builtin copy is specified to behave like memmove for overlapping slices).
func memmove(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
