// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/floatx/internal/mathutil"
)

// Number is any value IntToBits can encode. Floating-point values
// are accepted as long as they are integral.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bits is a fixed-width sequence of single bits, most significant bit first.
// Every element is either 0 or 1.
type Bits []uint8

// IntToBits encodes 'n' into exactly 'width' bits.
// Negative numbers are stored in two's complement.
// n must be in the range [-2^(width-1), 2^width - 1].
func IntToBits[T Number](n T, width int) (Bits, error) {
	if width < 1 || width > mu.MaxWidth {
		return nil, argError("bad width %d", width)
	}
	mag, neg, err := magnitude(n)
	if err != nil {
		return nil, err
	}
	if neg {
		if !mu.FitsNegative(mag, width) {
			return nil, rangeError("cannot fit -%d into %d bits", mag, width)
		}
		return uintToBits(mu.TwosComplement(mag, width), width), nil
	}
	if !mu.FitsUnsigned(mag, width) {
		return nil, rangeError("cannot fit %d into %d bits", mag, width)
	}
	return uintToBits(mag, width), nil
}

// magnitude splits n into its absolute value and sign.
func magnitude[T Number](n T) (mag uint64, neg bool, err error) {
	if isFloat[T]() {
		return floatMagnitude(float64(n))
	}
	if n < 0 {
		mag, neg = mu.AbsInt64(int64(n))
		return mag, neg, nil
	}
	return uint64(n), false, nil
}

// isFloat reports whether T is a floating-point type: only those keep a fraction of 1/2.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

func floatMagnitude(f float64) (uint64, bool, error) {
	if !mu.IsIntegral(f) {
		return 0, false, argError("%v is not an integer", f)
	}
	neg := f < 0
	if neg {
		f = -f
	}
	// 2^64 and above can't be converted to uint64.
	if f >= 1<<64 {
		return 0, false, rangeError("cannot fit %v into %d bits", f, mu.MaxWidth)
	}
	return uint64(f), neg, nil
}

// uintToBits expands the lowest 'width' bits of v.
func uintToBits(v uint64, width int) Bits {
	result := make(Bits, width)
	for i := width - 1; i >= 0; i-- {
		result[i] = uint8(v & 1)
		v >>= 1
	}
	return result
}

// Uint64 returns the unsigned positional value of the sequence.
// Only the last 64 bits are significant for longer sequences.
func (b Bits) Uint64() uint64 {
	var result uint64
	for _, bit := range b {
		result = result<<1 | uint64(bit&1)
	}
	return result
}

// String returns the sequence as a string of '0' and '1'.
func (b Bits) String() string {
	var builder strings.Builder
	builder.Grow(len(b))
	for _, bit := range b {
		builder.WriteByte('0' + bit&1)
	}
	return builder.String()
}

// ParseBits parses a string of '0' and '1' into a Bits value.
func ParseBits(s string) (Bits, error) {
	result := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1':
			result[i] = s[i] - '0'
		default:
			return nil, newPosError(fmt.Sprintf("unexpected symbol %q", s[i]), i+1)
		}
	}
	return result, nil
}

// checkWidth verifies that b has exactly 'width' binary digits.
func (b Bits) checkWidth(width int) error {
	if len(b) != width {
		return argError("expected %d bits, got %d", width, len(b))
	}
	for i, bit := range b {
		if bit > 1 {
			return argError("bit %d has value %d", i, bit)
		}
	}
	return nil
}
