// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeNaN(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		payload uint64
		quiet   bool
		sign    int
		bits    uint64
		err     error
	}{
		{0, true, 0, 0x7ff8000000000000, nil},
		{123, true, 0, 0x7ff8000000000000 | 123, nil},
		{123, false, 0, 0x7ff0000000000000 | 123, nil},
		{123, false, 1, 0xfff0000000000000 | 123, nil},
		{1<<51 - 1, true, 1, math.MaxUint64, nil},

		{0, false, 0, 0, ErrInvalidArgument},
		{1 << 51, true, 0, 0, ErrOutOfRange},
		{12345678901234567890, true, 0, 0, ErrOutOfRange},
		{1, true, 2, 0, ErrOutOfRange},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for _, c := range configs {
				f, err := c.MakeNaN(test.payload, test.quiet, test.sign)
				if test.err == nil {
					if a.NoError(err) {
						a.True(math.IsNaN(f))
						a.Equal(test.bits, math.Float64bits(f), "%+v", c)
					}
				} else {
					a.ErrorIs(err, test.err)
				}
			}
		})
	}
}

func TestParseNaN(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		res float64
		err string
	}{
		{"nan", mustNaN(0, true, 0), ""},
		{"NaN", mustNaN(0, true, 0), ""},
		{"-nan", mustNaN(0, true, 1), ""},
		{"qNaN123", mustNaN(123, true, 0), ""},
		{"QNAN123", mustNaN(123, true, 0), ""},
		{"snan123", mustNaN(123, false, 0), ""},
		{"-sNaN123", mustNaN(123, false, 1), ""},
		{"nan2251799813685247", mustNaN(1<<51-1, true, 0), ""},

		{"", 0, `parsing failed: expected "nan" at pos 1`},
		{"a", 0, `parsing failed: expected "nan" at pos 1`},
		{"-", 0, `parsing failed: expected "nan" at pos 2`},
		{"+nan", 0, `parsing failed: expected "nan" at pos 1`},
		{"xnan", 0, `parsing failed: expected "nan" at pos 1`},
		{"-snanx", 0, "parsing failed: unexpected symbol 'x' at pos 6"},
		{"nan12a", 0, "parsing failed: unexpected symbol 'a' at pos 6"},
		{"nan -1", 0, "parsing failed: unexpected symbol ' ' at pos 4"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := ParseNaN(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(math.Float64bits(test.res), math.Float64bits(f))
				}
			} else {
				a.EqualError(err, test.err)
				a.ErrorIs(err, ErrInvalidFormat)
			}
		})
	}
}

func TestParseNaNRange(t *testing.T) {
	a := assert.New(t)
	_, err := ParseNaN("snan0")
	a.ErrorIs(err, ErrInvalidArgument)
	_, err = ParseNaN("snan")
	a.ErrorIs(err, ErrInvalidArgument)
	_, err = ParseNaN("nan2251799813685248")
	a.ErrorIs(err, ErrOutOfRange)
	_, err = ParseNaN("nan12345678901234567890")
	a.ErrorIs(err, ErrOutOfRange)
}

func TestNaNInspection(t *testing.T) {
	a := assert.New(t)
	a.True(IsQuiet(math.NaN()))
	a.False(IsSignaling(math.NaN()))
	a.True(IsQuiet(mustNaN(123, true, 0)))
	a.False(IsSignaling(mustNaN(123, true, 0)))
	a.False(IsQuiet(mustNaN(123, false, 0)))
	a.True(IsSignaling(mustNaN(123, false, 0)))
	for _, f := range []float64{0, 1, math.Inf(1), math.Inf(-1), math.MaxFloat64} {
		a.False(IsQuiet(f))
		a.False(IsSignaling(f))
		_, err := NaNPayload(f)
		a.ErrorIs(err, ErrDomain)
	}

	tests := []struct {
		f       float64
		payload uint64
	}{
		{mustNaN(0, true, 0), 0},
		{mustNaN(123, true, 0), 123},
		{mustNaN(123, false, 0), 123},
		{mustNaN(123, false, 1), 123},
		{mustNaN(1<<51-1, true, 1), 1<<51 - 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			for _, c := range configs {
				p, err := c.NaNPayload(test.f)
				if a.NoError(err) {
					a.Equal(test.payload, p, "%+v", c)
				}
			}
		})
	}
	p, err := NaNPayload(MustParseNaN("snan123"))
	if a.NoError(err) {
		a.Equal(uint64(123), p)
	}
}

func TestFormatNaN(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f float64
		s string
	}{
		{mustNaN(0, true, 0), "NaN"},
		{mustNaN(0, true, 1), "-NaN"},
		{mustNaN(123, true, 0), "NaN123"},
		{mustNaN(123, false, 1), "-sNaN123"},
		{math.NaN(), "NaN1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, err := FormatNaN(test.f)
			if a.NoError(err) {
				a.Equal(test.s, s)
				f, err := ParseNaN(s)
				if a.NoError(err) {
					a.Equal(math.Float64bits(test.f), math.Float64bits(f))
				}
			}
		})
	}
	_, err := FormatNaN(1)
	a.ErrorIs(err, ErrDomain)
}
