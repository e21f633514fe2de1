// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatx

import (
	"encoding/binary"
	"math"
	"unsafe"
)

var (
	// Default is the configuration used by the package-level functions.
	// This variable is not thread-safe, so this should be changed on program start.
	// Changing it while package-level functions run in other goroutines is a data race;
	// concurrent callers that need other settings should use their own Config value.
	Default Config

	// Portable converts floats with the math package's IEEE 754 encoding.
	Portable Codec = portableCodec{}
	// Direct reinterprets the memory of a float as an integer of the same width.
	Direct Codec = directCodec{}
)

// Codec converts a float64 to and from its IEEE 754 binary representation.
type Codec interface {
	Float64bits(f float64) uint64
	Float64frombits(b uint64) float64
}

type portableCodec struct{}

func (portableCodec) Float64bits(f float64) uint64 {
	return math.Float64bits(f)
}

func (portableCodec) Float64frombits(b uint64) float64 {
	return math.Float64frombits(b)
}

type directCodec struct{}

func (directCodec) Float64bits(f float64) uint64 {
	return *(*uint64)(unsafe.Pointer(&f))
}

func (directCodec) Float64frombits(b uint64) float64 {
	return *(*float64)(unsafe.Pointer(&b))
}

// Config selects how floats are converted to bits.
// The zero value uses the Portable codec and big-endian bit sequences.
type Config struct {
	// Direct selects the Direct codec instead of Portable.
	Direct bool
	// LittleEndian makes ToBits and FromBits lay the bytes out
	// in little-endian order. Bits within a byte are always MSB first.
	LittleEndian bool
}

func (c Config) codec() Codec {
	if c.Direct {
		return Direct
	}
	return Portable
}

func (c Config) byteOrder() binary.ByteOrder {
	if c.LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ToBits returns the 64 bits of f.
func (c Config) ToBits(f float64) Bits {
	var buf [8]byte
	c.byteOrder().PutUint64(buf[:], c.codec().Float64bits(f))
	result := make(Bits, 0, totalWidth)
	for _, b := range buf {
		result = append(result, uintToBits(uint64(b), 8)...)
	}
	return result
}

// FromBits returns a float made of exactly 64 bits.
func (c Config) FromBits(bits Bits) (float64, error) {
	if err := bits.checkWidth(totalWidth); err != nil {
		return 0, err
	}
	var buf [8]byte
	for i := range buf {
		buf[i] = uint8(bits[i*8 : i*8+8].Uint64())
	}
	return c.codec().Float64frombits(c.byteOrder().Uint64(buf[:])), nil
}

// raw returns f's bits as an integer, ignoring the byte order setting.
func (c Config) raw(f float64) uint64 {
	return c.codec().Float64bits(f)
}

// negate flips the sign bit of f, leaving NaN payloads intact.
func (c Config) negate(f float64) float64 {
	cd := c.codec()
	return cd.Float64frombits(cd.Float64bits(f) ^ signMask)
}

// ToBits returns the 64 bits of f using the Default config.
func ToBits(f float64) Bits {
	return Default.ToBits(f)
}

// FromBits returns a float made of exactly 64 bits using the Default config.
func FromBits(bits Bits) (float64, error) {
	return Default.FromBits(bits)
}
