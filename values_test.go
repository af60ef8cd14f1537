package ufmt_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/ufmt"
)

func TestStrDebug(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":        {in: "plain", want: `"plain"`},
		"empty":        {in: "", want: `""`},
		"double quote": {in: `a"b`, want: `"a\"b"`},
		"single quote": {in: "it's", want: `"it's"`},
		"backslash":    {in: `a\b`, want: `"a\\b"`},
		"whitespace":   {in: "line\nnext\ttab\r", want: `"line\nnext\ttab\r"`},
		"nul":          {in: "nul\x00", want: `"nul\0"`},
		"bell":         {in: "bell\x07", want: `"bell\u{7}"`},
		"escape seq":   {in: "\x1b[0m", want: `"\u{1b}[0m"`},
		"c1 control":   {in: "\u0085", want: `"\u{85}"`},
		"non ascii":    {in: "héllo 世界", want: `"héllo 世界"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, debug(t, ufmt.Str(tt.in)))
			assert.Equal(t, tt.in, display(t, ufmt.Str(tt.in)))
		})
	}
}

func TestStrDebugWritesRuns(t *testing.T) {
	t.Parallel()
	var r recorder
	require.NoError(t, ufmt.NewFormatter(&r).Debug(ufmt.Str("ab\ncd")))
	assert.Equal(t, []string{`"`, "ab", `\n`, "cd", `"`}, r.writes)
}

func TestChar(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in      rune
		display string
		debug   string
	}{
		"letter":       {in: 'a', display: "a", debug: "'a'"},
		"single quote": {in: '\'', display: "'", debug: `'\''`},
		"double quote": {in: '"', display: `"`, debug: `'"'`},
		"newline":      {in: '\n', display: "\n", debug: `'\n'`},
		"accent":       {in: 'é', display: "é", debug: "'é'"},
		"emoji":        {in: '😀', display: "😀", debug: "'😀'"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.display, display(t, ufmt.Char(tt.in)))
			assert.Equal(t, tt.debug, debug(t, ufmt.Char(tt.in)))
		})
	}
}

func TestBool(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "true", display(t, ufmt.Bool(true)))
	assert.Equal(t, "false", debug(t, ufmt.Bool(false)))
}

func TestIPv4(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0.0.0.0", display(t, ufmt.IPv4{}))
	assert.Equal(t, "255.255.255.255", debug(t, ufmt.IPv4{255, 255, 255, 255}))
	assert.Equal(t, "127.0.0.1", display(t, ufmt.IPv4{127, 0, 0, 1}))
}

func TestValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want string
	}{
		"nil":          {in: nil, want: "nil"},
		"int":          {in: -7, want: "-7"},
		"uint8":        {in: uint8(200), want: "200"},
		"string":       {in: "s", want: `"s"`},
		"bool":         {in: false, want: "false"},
		"named string": {in: label("l"), want: `"l"`},
		"debugger":     {in: point{X: 1, Y: 2}, want: "Point { x: 1, y: 2 }"},
		"array":        {in: [2]int{1, 2}, want: "[1, 2]"},
		"nil slice":    {in: []int(nil), want: "[]"},
		"nil map":      {in: map[string]int(nil), want: "{}"},
		"nested": {
			in:   map[string]any{"b": []any{1, "x"}, "a": nil},
			want: `{"a": nil, "b": [1, "x"]}`,
		},
		"mixed keys": {
			in:   map[any]any{"s": 1, 2: 2, true: 3, uint8(1): 4},
			want: `{true: 3, 2: 2, 1: 4, "s": 1}`,
		},
		"int keys": {
			in:   map[int]string{10: "ten", -1: "minus", 2: "two"},
			want: `{-1: "minus", 2: "two", 10: "ten"}`,
		},
		"slice of records": {
			in:   []point{{X: 1}, {Y: 1}},
			want: "[Point { x: 1, y: 0 }, Point { x: 0, y: 1 }]",
		},
		"nil pointer":        {in: (*int)(nil), want: "0x0"},
		"nil record pointer": {in: (*point)(nil), want: "nil"},
		"nil record in map": {
			in:   map[string]any{"a": (*point)(nil), "b": point{X: 1}},
			want: `{"a": nil, "b": Point { x: 1, y: 0 }}`,
		},
		"nil record in slice": {in: []*point{nil}, want: "[nil]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := ufmt.Value(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, debug(t, v))
		})
	}
}

func TestNilRecordPointerArgument(t *testing.T) {
	t.Parallel()
	got, err := ufmt.Sprint("{} {:?} {:#?}", (*point)(nil), (*point)(nil), (*point)(nil))
	require.NoError(t, err)
	assert.Equal(t, "nil nil nil", got)
}

func TestValuePointer(t *testing.T) {
	t.Parallel()
	n := 1
	v, err := ufmt.Value(&n)
	require.NoError(t, err)
	got := debug(t, v)
	assert.True(t, strings.HasPrefix(got, "0x"), got)
	assert.NotEqual(t, "0x0", got)
}

func TestValueUnsupported(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in  any
		typ string
	}{
		"float":          {in: 1.5, typ: "float64"},
		"struct":         {in: struct{}{}, typ: "struct {}"},
		"func":           {in: func() {}, typ: "func()"},
		"float in slice": {in: []any{1, float32(2)}, typ: "float32"},
		"float map key":  {in: map[float64]int{1: 1}, typ: "float64"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := ufmt.Value(tt.in)
			require.ErrorIs(t, err, ufmt.ErrUnsupportedValue)
			assert.Nil(t, v)

			var ce *cuserr.CustomError
			require.True(t, errors.As(err, &ce))
			typ, ok := ce.GetMetadata(ufmt.MetaKeyType)
			require.True(t, ok)
			assert.Equal(t, tt.typ, typ)
		})
	}
}

func TestSortedMapOrder(t *testing.T) {
	t.Parallel()
	m := ufmt.SortedMap[ufmt.I32, ufmt.Bool]{3: true, -3: false, 0: true}
	assert.Equal(t, "{-3: false, 0: true, 3: true}", debug(t, m))
}
