// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"math"
	"math/big"
)

// ULPDistance returns how many times Successor must be applied to g to reach f.
// The result is negative if Predecessor steps are needed instead.
//
// Two floats with the same sign and exponent are as far apart as their
// mantissas, treated as unsigned integers. The largest float with one exponent
// and the smallest with the next one are one step apart. Both zeros are zero steps apart.
//
// Returns an error if f or g is NaN.
func (c Config) ULPDistance(f, g float64) (*big.Int, error) {
	if math.IsNaN(f) || math.IsNaN(g) {
		return nil, domainError("distance to NaN")
	}
	return c.ulpDistance(f, g), nil
}

// ULPDistance64 is like ULPDistance, but returns an error if the distance does not fit an int64.
func (c Config) ULPDistance64(f, g float64) (int64, error) {
	d, err := c.ULPDistance(f, g)
	if err != nil {
		return 0, err
	}
	if !d.IsInt64() {
		return 0, rangeError("distance %v does not fit an int64", d)
	}
	return d.Int64(), nil
}

func (c Config) ulpDistance(f, g float64) *big.Int {
	sf, mf, ef := c.parts(f)
	sg, mg, eg := c.parts(g)
	switch {
	case sf == 1:
		d := c.ulpDistance(c.negate(f), c.negate(g))
		return d.Neg(d)
	case sg == 1: // through zero.
		d := c.ulpDistance(f, 0)
		return d.Add(d, c.ulpDistance(c.negate(g), 0))
	case ef == eg:
		d := new(big.Int).SetUint64(mf)
		return d.Sub(d, new(big.Int).SetUint64(mg))
	case ef > eg:
		// every exponent step is 2^MantissaWidth mantissa steps.
		d := big.NewInt(int64(ef - eg))
		d.Lsh(d, MantissaWidth)
		d.Add(d, new(big.Int).SetUint64(mf))
		return d.Sub(d, new(big.Int).SetUint64(mg))
	default:
		d := c.ulpDistance(g, f)
		return d.Neg(d)
	}
}

// ULPDistance returns the distance between f and g in ULPs using the Default config.
func ULPDistance(f, g float64) (*big.Int, error) {
	return Default.ULPDistance(f, g)
}

// ULPDistance64 returns the distance between f and g in ULPs as an int64 using the Default config.
func ULPDistance64(f, g float64) (int64, error) {
	return Default.ULPDistance64(f, g)
}
