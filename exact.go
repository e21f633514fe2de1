// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

var bigFive = big.NewInt(5)

// Exact returns the exact decimal value of f.
// Every finite float64 is a dyadic rational, so it has a finite decimal expansion.
// Returns an error for infinities and NaNs.
func (c Config) Exact(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, domainError("%v has no exact decimal value", f)
	}
	sign, mant, exp := c.parts(f)
	mant, exp2 := significand(mant, exp)
	result := pow2(new(big.Int).SetUint64(mant), exp2)
	if sign == 1 {
		result = result.Neg()
	}
	return result, nil
}

// ULP returns the gap between |f| and the next float of larger magnitude.
// For the largest finite values it is the gap the next exponent would have had.
// Returns an error for infinities and NaNs.
func (c Config) ULP(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, domainError("%v has no ULP", f)
	}
	_, mant, exp := c.parts(f)
	_, exp2 := significand(mant, exp)
	return pow2(big.NewInt(1), exp2), nil
}

// significand returns such (m, e2), that the value of a float is m * 2^e2.
func significand(mant uint64, exp int) (m uint64, e2 int) {
	if exp == MinExponent { // subnormals have no implicit 1 and the same scale as the smallest normals.
		return mant, MinExponent + 1 - MantissaWidth
	}
	return mant | 1<<MantissaWidth, exp - MantissaWidth
}

// pow2 returns m * 2^e2 exactly. Negative powers use 2^-k = 5^k * 10^-k.
func pow2(m *big.Int, e2 int) decimal.Decimal {
	if e2 >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e2)), 0)
	}
	k := -e2
	p := new(big.Int).Exp(bigFive, big.NewInt(int64(k)), nil)
	return decimal.NewFromBigInt(m.Mul(m, p), int32(-k))
}

// Exact returns the exact decimal value of f using the Default config.
func Exact(f float64) (decimal.Decimal, error) {
	return Default.Exact(f)
}

// ULP returns the gap between |f| and the next float of larger magnitude using the Default config.
func ULP(f float64) (decimal.Decimal, error) {
	return Default.ULP(f)
}
