// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const nanTag = "nan"

// MakeNaN returns a NaN with the given payload, quiet flag and sign.
// The payload must fit PayloadWidth bits, and a signaling NaN
// must have a nonzero payload, otherwise it would be an infinity.
func (c Config) MakeNaN(payload uint64, quiet bool, sign int) (float64, error) {
	if sign != 0 && sign != 1 {
		return 0, rangeError("bad sign %d", sign)
	}
	if !quiet && payload == 0 {
		return 0, argError("a signaling NaN cannot have payload 0")
	}
	digits, err := IntToBits(payload, PayloadWidth)
	if err != nil {
		return 0, err
	}
	flag := uint8(0)
	if quiet {
		flag = 1
	}
	return c.Recompose(Tuple{
		Sign:     sign,
		Digits:   append(Bits{flag}, digits...),
		Exponent: MaxExponent,
	})
}

// ParseNaN makes a NaN from a string like "nan", "-qNaN", or "sNaN123".
// The grammar is ['-'] ('s'|'q')? 'nan' [decimal payload], case-insensitive.
// A missing payload means 0.
func (c Config) ParseNaN(s string) (float64, error) {
	pos, sign, quiet := 1, 0, true
	if strings.HasPrefix(s, "-") {
		sign, s, pos = 1, s[1:], pos+1
	}
	if len(s) > 0 {
		switch s[0] {
		case 's', 'S':
			quiet, s, pos = false, s[1:], pos+1
		case 'q', 'Q':
			s, pos = s[1:], pos+1
		}
	}
	if len(s) < len(nanTag) || !strings.EqualFold(s[:len(nanTag)], nanTag) {
		return 0, fmt.Errorf("parsing failed: %w", newPosError("expected "+strconv.Quote(nanTag), pos))
	}
	s, pos = s[len(nanTag):], pos+len(nanTag)
	var payload uint64
	if len(s) > 0 {
		for i, r := range s {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("parsing failed: %w", newPosError(fmt.Sprintf("unexpected symbol %q", r), pos+i))
			}
		}
		var err error
		if payload, err = strconv.ParseUint(s, 10, 64); err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, rangeError("payload %s", s)
			}
			return 0, err
		}
	}
	return c.MakeNaN(payload, quiet, sign)
}

// FormatNaN returns a string for a NaN, which ParseNaN turns back into the same NaN.
func (c Config) FormatNaN(f float64) (string, error) {
	if !math.IsNaN(f) {
		return "", domainError("%v is a number, not a NaN", f)
	}
	sign, mant, _ := c.parts(f)
	var builder strings.Builder
	if sign == 1 {
		builder.WriteByte('-')
	}
	if mant&quietMask == 0 {
		builder.WriteByte('s')
	}
	builder.WriteString("NaN")
	if payload := mant &^ quietMask; payload != 0 {
		builder.WriteString(strconv.FormatUint(payload, 10))
	}
	return builder.String(), nil
}

// IsSignaling returns true if f is a signaling NaN.
func (c Config) IsSignaling(f float64) bool {
	if !math.IsNaN(f) {
		return false
	}
	t := c.Decompose(f)
	return t.Digits.(Bits)[0] == 0
}

// IsQuiet returns true if f is a quiet NaN.
func (c Config) IsQuiet(f float64) bool {
	if !math.IsNaN(f) {
		return false
	}
	t := c.Decompose(f)
	return t.Digits.(Bits)[0] == 1
}

// NaNPayload returns the payload of a NaN.
// Returns an error if f is not a NaN.
func (c Config) NaNPayload(f float64) (uint64, error) {
	if !math.IsNaN(f) {
		return 0, domainError("%v is a number, not a NaN", f)
	}
	t := c.Decompose(f)
	return t.Digits.(Bits)[1:].Uint64(), nil
}

// MakeNaN returns a NaN using the Default config.
func MakeNaN(payload uint64, quiet bool, sign int) (float64, error) {
	return Default.MakeNaN(payload, quiet, sign)
}

// ParseNaN makes a NaN from a string using the Default config.
func ParseNaN(s string) (float64, error) {
	return Default.ParseNaN(s)
}

// MustParseNaN is like ParseNaN, but panics on errors.
func MustParseNaN(s string) float64 {
	f, err := ParseNaN(s)
	if err != nil {
		panic(err)
	}
	return f
}

// FormatNaN returns a string for a NaN using the Default config.
func FormatNaN(f float64) (string, error) {
	return Default.FormatNaN(f)
}

// IsSignaling returns true if f is a signaling NaN using the Default config.
func IsSignaling(f float64) bool {
	return Default.IsSignaling(f)
}

// IsQuiet returns true if f is a quiet NaN using the Default config.
func IsQuiet(f float64) bool {
	return Default.IsQuiet(f)
}

// NaNPayload returns the payload of a NaN using the Default config.
func NaNPayload(f float64) (uint64, error) {
	return Default.NaNPayload(f)
}
