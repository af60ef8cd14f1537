package ufmt

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) WriteStr(string) error {
	return errInternalWrite
}

// The buffers are sized for the widest value of each type, so the widest
// value fills them completely.
func TestBufferSizesExact(t *testing.T) {
	t.Parallel()

	var u8 [u8Len]byte
	assert.Zero(t, fillDecimal(uint8(math.MaxUint8), u8[:]))
	var u16 [u16Len]byte
	assert.Zero(t, fillDecimal(uint16(math.MaxUint16), u16[:]))
	var u32 [u32Len]byte
	assert.Zero(t, fillDecimal(uint32(math.MaxUint32), u32[:]))
	var u64 [u64Len]byte
	assert.Zero(t, fillDecimal(uint64(math.MaxUint64), u64[:]))

	var i8 [i8Len]byte
	assert.Zero(t, fillSigned(int8(math.MinInt8), math.MinInt8, uint8(math.MaxUint8/2+1), i8[:]))
	var i16 [i16Len]byte
	assert.Zero(t, fillSigned(int16(math.MinInt16), math.MinInt16, uint16(math.MaxUint16/2+1), i16[:]))
	var i32 [i32Len]byte
	assert.Zero(t, fillSigned(int32(math.MinInt32), math.MinInt32, uint32(math.MaxUint32/2+1), i32[:]))
	var i64 [i64Len]byte
	assert.Zero(t, fillSigned(int64(math.MinInt64), math.MinInt64, uint64(math.MaxUint64/2+1), i64[:]))

	var u128 [u128Len]byte
	assert.Zero(t, fillDecimal128(U128{Hi: math.MaxUint64, Lo: math.MaxUint64}, u128[:]))
	var i128 [i128Len]byte
	assert.Zero(t, fillSigned128(MinI128, i128[:]))
}

func TestFillDecimalZero(t *testing.T) {
	t.Parallel()
	var buf [u32Len]byte
	at := fillDecimal(uint32(0), buf[:])
	assert.Equal(t, "0", string(buf[at:]))
}

func TestFillHex(t *testing.T) {
	t.Parallel()
	var buf [ptrLen]byte
	at := fillHex(0xdead, buf[:])
	assert.Equal(t, "0xdead", string(buf[at:]))
	at = fillHex(0, buf[:])
	assert.Equal(t, "0x0", string(buf[at:]))
}

func TestQuoRem10(t *testing.T) {
	t.Parallel()
	q, r := U128{Hi: 1}.quoRem10()
	// 2^64 = 18446744073709551616
	assert.Equal(t, U128{Lo: 1844674407370955161}, q)
	assert.Equal(t, uint64(6), r)
}

func TestI128Neg(t *testing.T) {
	t.Parallel()
	assert.Equal(t, I128From(-5), I128From(5).neg())
	assert.Equal(t, I128From(5), I128From(-5).neg())
	assert.Equal(t, I128{}, I128{}.neg())
	assert.Equal(t, MinI128, MinI128.neg())
}

func TestCutIdent(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		name string
		rest string
	}{
		"positional":     {in: "}", name: "", rest: "}"},
		"name":           {in: "abc}", name: "abc", rest: "}"},
		"name with spec": {in: "a1:?}", name: "a1", rest: ":?}"},
		"leading digit":  {in: "1a}", name: "", rest: "1a}"},
		"unterminated":   {in: "abc", name: "", rest: "abc"},
		"empty":          {in: "", name: "", rest: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			gotName, gotRest := cutIdent(tt.in)
			assert.Equal(t, tt.name, gotName)
			assert.Equal(t, tt.rest, gotRest)
		})
	}
}

func TestIndentUnit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "    ", indentUnit(DefaultIndent))
	assert.Equal(t, "  ", indentUnit(2))
	assert.Empty(t, indentUnit(0))
}

func TestBuilderFinishTwice(t *testing.T) {
	t.Parallel()
	var buf Buffer
	b := newBuilder(NewFormatter(&buf), &listShape)
	require.NoError(t, b.finish())
	assert.ErrorIs(t, b.finish(), ErrBuilderFinished)
	assert.Equal(t, "[]", buf.String())
}

func TestBuilderErrorRestoresDepth(t *testing.T) {
	t.Parallel()
	f := &Formatter{w: &errWriterInternal{}, p: std, indent: "    ", pretty: true}
	err := f.DebugList(func(l *ListBuilder) {
		l.Entry(U8(1))
	})
	assert.ErrorIs(t, err, errInternalWrite)
	assert.Zero(t, f.depth)

	f.w = &failingAfter{n: 1}
	err = f.DebugList(func(l *ListBuilder) {
		l.Entry(U8(1)).Entry(U8(2))
	})
	assert.ErrorIs(t, err, errInternalWrite)
	assert.Zero(t, f.depth)
}

type failingAfter struct {
	n int
}

func (f *failingAfter) WriteStr(string) error {
	if f.n == 0 {
		return errInternalWrite
	}
	f.n--
	return nil
}

func TestCompareKeysOrdersKinds(t *testing.T) {
	t.Parallel()
	v, err := Value(map[any]int{"b": 1, "a": 2, int8(-1): 3, uint(0): 4, false: 5, true: 6})
	require.NoError(t, err)
	var buf Buffer
	require.NoError(t, NewFormatter(&buf).Debug(v))
	assert.Equal(t, `{false: 5, true: 6, -1: 3, 0: 4, "a": 2, "b": 1}`, buf.String())
}

func TestCompareKeysBreaksTiesOnType(t *testing.T) {
	t.Parallel()
	for range 20 {
		v, err := Value(map[any]int{int(1): 1, int8(1): 2, int64(1): 3, uint16(1): 4, uint(1): 5})
		require.NoError(t, err)
		var buf Buffer
		require.NoError(t, NewFormatter(&buf).Debug(v))
		assert.Equal(t, "{1: 1, 1: 3, 1: 2, 1: 5, 1: 4}", buf.String())
	}
}

func TestDefaultPrinterCacheBounded(t *testing.T) {
	t.Parallel()
	for i := range DefaultCacheSize + 10 {
		_, err := Sprint("n" + strconv.Itoa(i) + "={}")
		require.ErrorIs(t, err, ErrArity)
	}
	assert.LessOrEqual(t, std.Cache().Len(), DefaultCacheSize)
}
