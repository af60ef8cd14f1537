package ufmt

import (
	"math"
	"math/bits"
)

// U128 is an unsigned 128-bit integer split into two 64-bit halves.
type U128 struct {
	Hi, Lo uint64
}

// U128From widens a uint64.
func U128From(v uint64) U128 { return U128{Lo: v} }

// IsZero reports whether u is zero.
func (u U128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// quoRem10 returns u/10 and u%10.
func (u U128) quoRem10() (U128, uint64) {
	hi, r := u.Hi/10, u.Hi%10
	lo, rem := bits.Div64(r, u.Lo, 10)
	return U128{Hi: hi, Lo: lo}, rem
}

func fillDecimal128(n U128, buf []byte) int {
	at := len(buf)
	for {
		var d uint64
		n, d = n.quoRem10()
		at--
		buf[at] = byte(d) + '0'
		if n.IsZero() {
			return at
		}
	}
}

func (u U128) Display(f *Formatter) error {
	var buf [u128Len]byte
	at := fillDecimal128(u, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (u U128) Debug(f *Formatter) error { return u.Display(f) }

// I128 is a signed 128-bit integer in two's complement; the top bit of Hi
// is the sign.
type I128 struct {
	Hi, Lo uint64
}

// Extremes of I128.
var (
	MinI128 = I128{Hi: 1 << 63}
	MaxI128 = I128{Hi: math.MaxInt64, Lo: math.MaxUint64}
)

// u128HalfPlusOne is MaxU128/2 + 1, the magnitude of MinI128.
var u128HalfPlusOne = U128{Hi: math.MaxUint64/2 + 1}

// I128From sign-extends an int64.
func I128From(v int64) I128 {
	return I128{Hi: uint64(v >> 63), Lo: uint64(v)}
}

// IsNegative reports whether i is below zero.
func (i I128) IsNegative() bool { return i.Hi>>63 == 1 }

// neg returns -i. It wraps for MinI128.
func (i I128) neg() I128 {
	lo, carry := bits.Add64(^i.Lo, 1, 0)
	hi, _ := bits.Add64(^i.Hi, 0, carry)
	return I128{Hi: hi, Lo: lo}
}

func fillSigned128(n I128, buf []byte) int {
	var mag U128
	switch {
	case !n.IsNegative():
		mag = U128(n)
	case n == MinI128:
		mag = u128HalfPlusOne
	default:
		mag = U128(n.neg())
	}
	at := fillDecimal128(mag, buf)
	if n.IsNegative() {
		at--
		buf[at] = '-'
	}
	return at
}

func (i I128) Display(f *Formatter) error {
	var buf [i128Len]byte
	at := fillSigned128(i, buf[:])
	return f.WriteStr(string(buf[at:]))
}

func (i I128) Debug(f *Formatter) error { return i.Display(f) }
