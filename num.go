package ufmt

import (
	"math"
	"math/bits"
)

// Buffer capacities. Each holds the longest rendering of its width; the
// signed ones reserve a slot for '-'.
const (
	u8Len   = 3
	u16Len  = 5
	u32Len  = 10
	u64Len  = 20
	u128Len = 39

	i8Len   = 4
	i16Len  = 6
	i32Len  = 11
	i64Len  = 20
	i128Len = 40

	uintLen = u32Len + (bits.UintSize/64)*(u64Len-u32Len)
	intLen  = i32Len + (bits.UintSize/64)*(i64Len-i32Len)

	// "0x" followed by one hex digit per nibble.
	ptrLen = 2 + bits.UintSize/4
)

const hexDigits = "0123456789abcdef"

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// fillDecimal writes the digits of n into the tail of buf and returns the
// index of the first digit. Zero yields a single '0'.
func fillDecimal[T unsigned](n T, buf []byte) int {
	at := len(buf)
	for {
		at--
		buf[at] = byte(n%10) + '0'
		n /= 10
		if n == 0 {
			return at
		}
	}
}

// fillSigned is fillDecimal for signed values. minVal cannot be negated
// within T, so its magnitude is passed in as minMag.
func fillSigned[T signed, U unsigned](n, minVal T, minMag U, buf []byte) int {
	var mag U
	switch {
	case n >= 0:
		mag = U(n)
	case n == minVal:
		mag = minMag
	default:
		mag = U(-n)
	}
	at := fillDecimal(mag, buf)
	if n < 0 {
		at--
		buf[at] = '-'
	}
	return at
}

// fillHex writes n as "0x" followed by its lowercase hex digits, without
// zero padding.
func fillHex(n uint64, buf []byte) int {
	at := fillHexDigits(n, buf)
	at--
	buf[at] = 'x'
	at--
	buf[at] = '0'
	return at
}

func fillHexDigits(n uint64, buf []byte) int {
	at := len(buf)
	for {
		at--
		buf[at] = hexDigits[n%16]
		n /= 16
		if n == 0 {
			return at
		}
	}
}

// I8 renders an int8.
type I8 int8

func (n I8) Display(f *Formatter) error {
	var buf [i8Len]byte
	at := fillSigned(n, math.MinInt8, uint8(math.MaxUint8/2+1), buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n I8) Debug(f *Formatter) error { return n.Display(f) }

// I16 renders an int16.
type I16 int16

func (n I16) Display(f *Formatter) error {
	var buf [i16Len]byte
	at := fillSigned(n, math.MinInt16, uint16(math.MaxUint16/2+1), buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n I16) Debug(f *Formatter) error { return n.Display(f) }

// I32 renders an int32.
type I32 int32

func (n I32) Display(f *Formatter) error {
	var buf [i32Len]byte
	at := fillSigned(n, math.MinInt32, uint32(math.MaxUint32/2+1), buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n I32) Debug(f *Formatter) error { return n.Display(f) }

// I64 renders an int64.
type I64 int64

func (n I64) Display(f *Formatter) error {
	var buf [i64Len]byte
	at := fillSigned(n, math.MinInt64, uint64(math.MaxUint64/2+1), buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n I64) Debug(f *Formatter) error { return n.Display(f) }

// Int renders a platform int.
type Int int

func (n Int) Display(f *Formatter) error {
	var buf [intLen]byte
	at := fillSigned(n, math.MinInt, uint(math.MaxUint/2+1), buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n Int) Debug(f *Formatter) error { return n.Display(f) }

// U8 renders a uint8.
type U8 uint8

func (n U8) Display(f *Formatter) error {
	var buf [u8Len]byte
	at := fillDecimal(n, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n U8) Debug(f *Formatter) error { return n.Display(f) }

// U16 renders a uint16.
type U16 uint16

func (n U16) Display(f *Formatter) error {
	var buf [u16Len]byte
	at := fillDecimal(n, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n U16) Debug(f *Formatter) error { return n.Display(f) }

// U32 renders a uint32.
type U32 uint32

func (n U32) Display(f *Formatter) error {
	var buf [u32Len]byte
	at := fillDecimal(n, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n U32) Debug(f *Formatter) error { return n.Display(f) }

// U64 renders a uint64.
type U64 uint64

func (n U64) Display(f *Formatter) error {
	var buf [u64Len]byte
	at := fillDecimal(n, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n U64) Debug(f *Formatter) error { return n.Display(f) }

// Uint renders a platform uint. uintptr values are rendered as Uint too;
// use [Ptr] for addresses.
type Uint uint

func (n Uint) Display(f *Formatter) error {
	var buf [uintLen]byte
	at := fillDecimal(n, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (n Uint) Debug(f *Formatter) error { return n.Display(f) }

// Ptr is a raw address. It only has a debug form: "0x" followed by the
// significant hex digits.
type Ptr uintptr

func (p Ptr) Debug(f *Formatter) error {
	var buf [ptrLen]byte
	at := fillHex(uint64(p), buf[:])
	return f.WriteStr(string(buf[at:]))
}
