// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatx implements bit-exact manipulation of IEEE 754 binary64 values:
// conversion to and from bit sequences, (sign, digits, exponent) tuples,
// stepping to adjacent representable values, distances in ULPs,
// and construction and inspection of NaNs.
//
// A float64 is laid out as
//
//	63 62        52 51                                                0
//	_|___________|____________________________________________________
//	seeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
//
// All functions are pure. Calls that pass an explicit Config are safe for
// concurrent use; the package-level functions read Default.
package floatx

import (
	"fmt"
)

const (
	// MantissaWidth is the number of explicitly stored mantissa bits.
	MantissaWidth = 52
	// ExponentWidth is the number of exponent bits.
	ExponentWidth = 11
	// PayloadWidth is the number of NaN payload bits, all mantissa bits but the quiet flag.
	PayloadWidth = MantissaWidth - 1
	// ExponentBias is subtracted from the stored exponent to get the unbiased one.
	ExponentBias = 1<<(ExponentWidth-1) - 1
	// MinExponent is the unbiased exponent of zeros and subnormals.
	MinExponent = -ExponentBias
	// MaxExponent is the unbiased exponent of infinities and NaNs.
	MaxExponent = ExponentBias + 1

	totalWidth = 1 + ExponentWidth + MantissaWidth

	signMask  = 1 << (totalWidth - 1)
	expMask   = 1<<ExponentWidth - 1
	mantMask  = 1<<MantissaWidth - 1
	quietMask = 1 << PayloadWidth
)

// Digits is the mantissa of a Tuple.
// It is either Bits of exactly MantissaWidth elements, or a Uint.
type Digits interface {
	mantissaBits() (Bits, error)
}

// Uint is an integer form of Digits. It is expanded to MantissaWidth bits.
type Uint uint64

func (u Uint) mantissaBits() (Bits, error) {
	return IntToBits(uint64(u), MantissaWidth)
}

func (b Bits) mantissaBits() (Bits, error) {
	if err := b.checkWidth(MantissaWidth); err != nil {
		return nil, err
	}
	return b, nil
}

// Tuple is a structured representation of a float64.
// Digits never include the implicit leading 1 of normal numbers.
// Exponent is unbiased: MinExponent for zeros and subnormals,
// MaxExponent for infinities and NaNs.
type Tuple struct {
	Sign     int
	Digits   Digits
	Exponent int
}

// Mantissa returns the digits as an unsigned integer.
func (t Tuple) Mantissa() (uint64, error) {
	if t.Digits == nil {
		return 0, argError("no digits")
	}
	digits, err := t.Digits.mantissaBits()
	if err != nil {
		return 0, err
	}
	return digits.Uint64(), nil
}

// String returns a tuple representation like (0, 0x8000000000000, 1).
func (t Tuple) String() string {
	m, err := t.Mantissa()
	if err != nil {
		return fmt.Sprintf("(%d, %v, %d)", t.Sign, t.Digits, t.Exponent)
	}
	return fmt.Sprintf("(%d, %#x, %d)", t.Sign, m, t.Exponent)
}

// Decompose splits f into a sign, 52 mantissa digits and an unbiased exponent.
func (c Config) Decompose(f float64) Tuple {
	bits := uintToBits(c.raw(f), totalWidth)
	return Tuple{
		Sign:     int(bits[0]),
		Digits:   bits[1+ExponentWidth:],
		Exponent: int(bits[1:1+ExponentWidth].Uint64()) - ExponentBias,
	}
}

// Recompose builds a float from a tuple.
// Returns an error if the sign is not 0 or 1, the digits do not fit MantissaWidth bits,
// or the exponent is outside [MinExponent, MaxExponent].
func (c Config) Recompose(t Tuple) (float64, error) {
	if t.Sign != 0 && t.Sign != 1 {
		return 0, rangeError("bad sign %d", t.Sign)
	}
	mant, err := t.Mantissa()
	if err != nil {
		return 0, err
	}
	if t.Exponent < MinExponent || t.Exponent > MaxExponent {
		return 0, rangeError("cannot fit exponent %d into %d bits", t.Exponent, ExponentWidth)
	}
	return c.fromParts(t.Sign, mant, t.Exponent), nil
}

// parts returns f's sign, mantissa and unbiased exponent.
func (c Config) parts(f float64) (sign int, mant uint64, exp int) {
	t := c.Decompose(f)
	// the digits of a decomposed value are always well-formed.
	mant, _ = t.Mantissa()
	return t.Sign, mant, t.Exponent
}

// fromParts assembles a float. Arguments must be in range.
func (c Config) fromParts(sign int, mant uint64, exp int) float64 {
	v := uint64(sign)<<(totalWidth-1) |
		uint64(exp+ExponentBias)&expMask<<MantissaWidth |
		mant&mantMask
	return c.codec().Float64frombits(v)
}

// Decompose splits f using the Default config.
func Decompose(f float64) Tuple {
	return Default.Decompose(f)
}

// Recompose builds a float from a tuple using the Default config.
func Recompose(t Tuple) (float64, error) {
	return Default.Recompose(t)
}
