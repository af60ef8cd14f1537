package ufmt_test

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/ufmt"
)

// recorder keeps every string handed to WriteStr.
type recorder struct {
	writes []string
}

func (r *recorder) WriteStr(s string) error {
	r.writes = append(r.writes, s)
	return nil
}

func display(t *testing.T, v ufmt.Displayer) string {
	t.Helper()
	s, err := ufmt.Sprint("{}", v)
	require.NoError(t, err)
	return s
}

func debug(t *testing.T, v ufmt.Debugger) string {
	t.Helper()
	s, err := ufmt.Sprint("{:?}", v)
	require.NoError(t, err)
	return s
}

func TestIntegerDisplay(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    ufmt.Displayer
		want string
	}{
		"u8 zero":  {v: ufmt.U8(0), want: "0"},
		"u8 max":   {v: ufmt.U8(math.MaxUint8), want: "255"},
		"u16 max":  {v: ufmt.U16(math.MaxUint16), want: "65535"},
		"u32 max":  {v: ufmt.U32(math.MaxUint32), want: "4294967295"},
		"u64 max":  {v: ufmt.U64(math.MaxUint64), want: "18446744073709551615"},
		"uint":     {v: ufmt.Uint(1000), want: "1000"},
		"i8 min":   {v: ufmt.I8(math.MinInt8), want: "-128"},
		"i8 max":   {v: ufmt.I8(math.MaxInt8), want: "127"},
		"i8 -1":    {v: ufmt.I8(-1), want: "-1"},
		"i16 min":  {v: ufmt.I16(math.MinInt16), want: "-32768"},
		"i16 max":  {v: ufmt.I16(math.MaxInt16), want: "32767"},
		"i32 min":  {v: ufmt.I32(math.MinInt32), want: "-2147483648"},
		"i32 max":  {v: ufmt.I32(math.MaxInt32), want: "2147483647"},
		"i64 min":  {v: ufmt.I64(math.MinInt64), want: "-9223372036854775808"},
		"i64 max":  {v: ufmt.I64(math.MaxInt64), want: "9223372036854775807"},
		"i64 zero": {v: ufmt.I64(0), want: "0"},
		"int min":  {v: ufmt.Int(math.MinInt), want: strconv.Itoa(math.MinInt)},
		"int 10":   {v: ufmt.Int(10), want: "10"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, display(t, tt.v))
		})
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	t.Parallel()
	for _, n := range []int64{0, 1, 9, 10, 99, 100, -1, -9, -10, 12345, -54321, math.MaxInt32 + 1, math.MinInt32 - 1} {
		got := display(t, ufmt.I64(n))
		parsed, err := strconv.ParseInt(got, 10, 64)
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
	for n := range 256 {
		got := display(t, ufmt.U8(n))
		assert.Equal(t, strconv.Itoa(n), got)
		if n > 0 {
			assert.NotEqual(t, byte('0'), got[0])
		}
	}
	for n := math.MinInt8; n <= math.MaxInt8; n++ {
		assert.Equal(t, strconv.Itoa(n), display(t, ufmt.I8(n)))
	}
}

func TestIntegerDebugMatchesDisplay(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-42", debug(t, ufmt.I32(-42)))
	assert.Equal(t, "42", debug(t, ufmt.U16(42)))
}

func TestIntegerSingleWrite(t *testing.T) {
	t.Parallel()
	values := []ufmt.Displayer{
		ufmt.I8(math.MinInt8),
		ufmt.I64(math.MinInt64),
		ufmt.U64(math.MaxUint64),
		ufmt.U128{Hi: math.MaxUint64, Lo: math.MaxUint64},
		ufmt.MinI128,
	}
	for _, v := range values {
		var r recorder
		require.NoError(t, ufmt.Write(&r, "{}", v))
		assert.Len(t, r.writes, 1)
	}
}

func bigOf(hi, lo uint64) *big.Int {
	n := new(big.Int).SetUint64(hi)
	n.Lsh(n, 64)
	return n.Or(n, new(big.Int).SetUint64(lo))
}

func TestU128(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    ufmt.U128
		want string
	}{
		"zero":      {v: ufmt.U128{}, want: "0"},
		"from":      {v: ufmt.U128From(42), want: "42"},
		"max":       {v: ufmt.U128{Hi: math.MaxUint64, Lo: math.MaxUint64}, want: "340282366920938463463374607431768211455"},
		"2^64":      {v: ufmt.U128{Hi: 1}, want: "18446744073709551616"},
		"mixed":     {v: ufmt.U128{Hi: 0x0123456789abcdef, Lo: 0xfedcba9876543210}, want: bigOf(0x0123456789abcdef, 0xfedcba9876543210).String()},
		"power ten": {v: ufmt.U128{Hi: 0x4b3b4ca85a86c47a, Lo: 0x098a224000000000}, want: bigOf(0x4b3b4ca85a86c47a, 0x098a224000000000).String()},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, display(t, tt.v))
			assert.Equal(t, bigOf(tt.v.Hi, tt.v.Lo).String(), debug(t, tt.v))
		})
	}
}

func TestI128(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    ufmt.I128
		want string
	}{
		"zero":      {v: ufmt.I128{}, want: "0"},
		"minus one": {v: ufmt.I128From(-1), want: "-1"},
		"from min":  {v: ufmt.I128From(math.MinInt64), want: "-9223372036854775808"},
		"from max":  {v: ufmt.I128From(math.MaxInt64), want: "9223372036854775807"},
		"min":       {v: ufmt.MinI128, want: "-170141183460469231731687303715884105728"},
		"max":       {v: ufmt.MaxI128, want: "170141183460469231731687303715884105727"},
		"min + 1":   {v: ufmt.I128{Hi: 1 << 63, Lo: 1}, want: "-170141183460469231731687303715884105727"},
		"-2^64":     {v: ufmt.I128{Hi: math.MaxUint64}, want: "-18446744073709551616"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, display(t, tt.v))
			assert.Equal(t, tt.want, debug(t, tt.v))
		})
	}
}

func TestI128IsNegative(t *testing.T) {
	t.Parallel()
	assert.True(t, ufmt.MinI128.IsNegative())
	assert.True(t, ufmt.I128From(-5).IsNegative())
	assert.False(t, ufmt.MaxI128.IsNegative())
	assert.False(t, ufmt.I128From(0).IsNegative())
}

func TestPtr(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v    ufmt.Ptr
		want string
	}{
		"zero":    {v: 0, want: "0x0"},
		"small":   {v: 0xff, want: "0xff"},
		"typical": {v: 0x1234abcd, want: "0x1234abcd"},
		"max":     {v: ^ufmt.Ptr(0), want: "0x" + strconv.FormatUint(uint64(^uintptr(0)), 16)},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var r recorder
			require.NoError(t, ufmt.Write(&r, "{:?}", tt.v))
			assert.Equal(t, []string{tt.want}, r.writes)
		})
	}
}
