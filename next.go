// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import "math"

// Predecessor returns the largest float that is smaller than f.
// NaNs are returned as is, and so is -Inf.
// The predecessor of the smallest positive subnormal is +0,
// and the predecessor of both zeros is the negative subnormal closest to zero.
func (c Config) Predecessor(f float64) float64 {
	if math.IsNaN(f) {
		return f
	}
	sign, mant, exp := c.parts(f)
	if sign == 1 { // going down means growing in magnitude.
		switch {
		case exp == MaxExponent:
			return f
		case mant == mantMask:
			exp++
			mant = 0
		default:
			mant++
		}
	} else {
		switch {
		case mant != 0:
			mant--
		case exp == MinExponent: // cross zero.
			sign, mant = 1, 1
		default:
			exp--
			mant = mantMask
		}
	}
	return c.fromParts(sign, mant, exp)
}

// Successor returns the smallest float that is larger than f.
// It is the mirror image of Predecessor: -Predecessor(-f).
func (c Config) Successor(f float64) float64 {
	return c.negate(c.Predecessor(c.negate(f)))
}

// NextToward returns the float next to f in the direction of g.
// If f == g, g is returned, so that the result takes g's sign.
// If either value is NaN, it is returned, f taking precedence.
func (c Config) NextToward(f, g float64) float64 {
	switch {
	case math.IsNaN(f):
		return f
	case math.IsNaN(g):
		return g
	case f == g:
		return g
	case f < g:
		return c.Successor(f)
	default:
		return c.Predecessor(f)
	}
}

// Predecessor returns the largest float that is smaller than f using the Default config.
func Predecessor(f float64) float64 {
	return Default.Predecessor(f)
}

// Successor returns the smallest float that is larger than f using the Default config.
func Successor(f float64) float64 {
	return Default.Successor(f)
}

// NextToward returns the float next to f in the direction of g using the Default config.
func NextToward(f, g float64) float64 {
	return Default.NextToward(f, g)
}
