package mathutil

import (
	"math"
	"math/bits"
	"unsafe"
)

// MaxWidth is the widest fixed-width integer the helpers support.
const MaxWidth = int(8 * unsafe.Sizeof(uint64(0)))

// BinaryDigits returns the number of binary digits in 'value'.
func BinaryDigits(value uint64) int {
	return MaxWidth - bits.LeadingZeros64(value)
}

// Mask returns a value with the lowest 'width' bits set.
func Mask(width int) uint64 {
	if width >= MaxWidth {
		return math.MaxUint64
	}
	if width <= 0 {
		return 0
	}
	return 1<<uint(width) - 1
}

// FitsUnsigned reports whether 'value' can be stored in 'width' bits.
func FitsUnsigned(value uint64, width int) bool {
	return BinaryDigits(value) <= width
}

// FitsNegative reports whether -mag can be stored in 'width' bits
// as a two's complement number, i.e. mag <= 2^(width-1).
func FitsNegative(mag uint64, width int) bool {
	if mag == 0 {
		return true
	}
	return BinaryDigits(mag-1) < width
}

// TwosComplement returns the 'width'-bit two's complement encoding of -mag.
func TwosComplement(mag uint64, width int) uint64 {
	return (^mag + 1) & Mask(width)
}

// AbsInt64 returns the magnitude of 'val'. Unlike a plain negation it
// is defined for math.MinInt64.
func AbsInt64(val int64) (mag uint64, neg bool) {
	if val < 0 {
		return -uint64(val), true
	}
	return uint64(val), false
}

// IsIntegral reports whether 'f' is a finite value without a fractional part.
func IsIntegral(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	return math.Trunc(f) == f
}
