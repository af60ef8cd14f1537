package ufmt

import (
	"cmp"
	"maps"
	"reflect"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Str renders a string: verbatim for display, quoted and escaped for debug.
type Str string

func (s Str) Display(f *Formatter) error { return f.WriteStr(string(s)) }

func (s Str) Debug(f *Formatter) error {
	if err := f.WriteStr(`"`); err != nil {
		return err
	}
	if err := writeEscaped(f, string(s), '"'); err != nil {
		return err
	}
	return f.WriteStr(`"`)
}

// Char renders a rune: as itself for display, quoted for debug.
type Char rune

func (c Char) Display(f *Formatter) error { return f.WriteChar(rune(c)) }

func (c Char) Debug(f *Formatter) error {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(c))
	if err := f.WriteStr("'"); err != nil {
		return err
	}
	if err := writeEscaped(f, string(buf[:n]), '\''); err != nil {
		return err
	}
	return f.WriteStr("'")
}

// writeEscaped writes s with quote, backslash and control characters
// escaped. Unescaped runs are written in one piece.
func writeEscaped(f *Formatter, s string, quote rune) error {
	start := 0
	for i, r := range s {
		esc := escapeOf(r, quote)
		if esc == "" && !unicode.IsControl(r) {
			continue
		}
		if start < i {
			if err := f.WriteStr(s[start:i]); err != nil {
				return err
			}
		}
		start = i + utf8.RuneLen(r)
		if esc != "" {
			if err := f.WriteStr(esc); err != nil {
				return err
			}
			continue
		}
		// \u{XX}
		var buf [3 + 8 + 1]byte
		buf[len(buf)-1] = '}'
		at := fillHexDigits(uint64(r), buf[:len(buf)-1])
		at -= 3
		copy(buf[at:], `\u{`)
		if err := f.WriteStr(string(buf[at:])); err != nil {
			return err
		}
	}
	if start < len(s) {
		return f.WriteStr(s[start:])
	}
	return nil
}

func escapeOf(r, quote rune) string {
	switch r {
	case quote:
		if quote == '"' {
			return `\"`
		}
		return `\'`
	case '\\':
		return `\\`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	}
	return ""
}

// Bool renders true or false.
type Bool bool

func (b Bool) Display(f *Formatter) error {
	if b {
		return f.WriteStr("true")
	}
	return f.WriteStr("false")
}

func (b Bool) Debug(f *Formatter) error { return b.Display(f) }

type nilValue struct{}

func (nilValue) Display(f *Formatter) error { return f.WriteStr("nil") }

func (nilValue) Debug(f *Formatter) error { return f.WriteStr("nil") }

// IPv4 is an IPv4 address rendered in dotted-decimal form.
type IPv4 [4]byte

func (ip IPv4) Display(f *Formatter) error {
	return f.Write("{a}.{b}.{c}.{d}",
		Named("a", U8(ip[0])), Named("b", U8(ip[1])),
		Named("c", U8(ip[2])), Named("d", U8(ip[3])))
}

func (ip IPv4) Debug(f *Formatter) error { return ip.Display(f) }

// Slice renders a slice as a list.
type Slice[T Debugger] []T

func (s Slice[T]) Debug(f *Formatter) error {
	return f.DebugList(func(l *ListBuilder) {
		for _, v := range s {
			l.Entry(v)
		}
	})
}

// Set renders a slice as a set. Elements are written in slice order.
type Set[T Debugger] []T

func (s Set[T]) Debug(f *Formatter) error {
	return f.DebugSet(func(b *SetBuilder) {
		for _, v := range s {
			b.Entry(v)
		}
	})
}

// SortedMap renders a map with its entries in ascending key order.
type SortedMap[K interface {
	cmp.Ordered
	Debugger
}, V Debugger] map[K]V

func (m SortedMap[K, V]) Debug(f *Formatter) error {
	keys := slices.Sorted(maps.Keys(m))
	return f.DebugMap(func(b *MapBuilder) {
		for _, k := range keys {
			b.Entry(k, m[k])
		}
	})
}

// Value converts an arbitrary Go value into a [Debugger]. Debuggers are
// returned as is; integers, strings and booleans of any named type map to
// the wrappers in this package; slices and arrays become lists; maps become
// mappings with sorted keys; other pointers render as their address; nil
// renders as "nil". Anything else, floats included, yields
// [ErrUnsupportedValue]. The whole value is converted up front, so the error
// surfaces before anything is written.
func Value(v any) (Debugger, error) {
	return debuggerOf(v)
}

func debuggerOf(v any) (Debugger, error) {
	switch v := v.(type) {
	case nil:
		return nilValue{}, nil
	case Debugger:
		if isNilPointer(v) {
			return nilValue{}, nil
		}
		return v, nil
	case int:
		return Int(v), nil
	case int8:
		return I8(v), nil
	case int16:
		return I16(v), nil
	case int32:
		return I32(v), nil
	case int64:
		return I64(v), nil
	case uint:
		return Uint(v), nil
	case uint8:
		return U8(v), nil
	case uint16:
		return U16(v), nil
	case uint32:
		return U32(v), nil
	case uint64:
		return U64(v), nil
	case uintptr:
		return Uint(v), nil
	case string:
		return Str(v), nil
	case bool:
		return Bool(v), nil
	}
	return reflectDebugger(reflect.ValueOf(v))
}

func reflectDebugger(rv reflect.Value) (Debugger, error) {
	if d, ok := scalarOf(rv); ok {
		return d, nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return Ptr(rv.Pointer()), nil
	case reflect.Interface:
		if rv.IsNil() {
			return nilValue{}, nil
		}
		return debuggerOf(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		list := make(dynList, rv.Len())
		for i := range list {
			d, err := debuggerOf(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			list[i] = d
		}
		return list, nil
	case reflect.Map:
		return dynMapOf(rv)
	}
	return nil, newUnsupportedValueError(rv.Interface(), SpecDebug)
}

// isNilPointer reports whether v is a typed nil pointer. Its methods
// cannot be called when they have value receivers.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// scalarOf maps named integer, string and bool types by kind.
func scalarOf(rv reflect.Value) (Debugger, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return I64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return U64(rv.Uint()), true
	case reflect.String:
		return Str(rv.String()), true
	case reflect.Bool:
		return Bool(rv.Bool()), true
	}
	return nil, false
}

func displayerOf(v any) (Displayer, error) {
	switch v := v.(type) {
	case nil:
		return nilValue{}, nil
	case Displayer:
		if isNilPointer(v) {
			return nilValue{}, nil
		}
		return v, nil
	case Debugger:
		// Debug-only types such as Ptr are not displayable, whatever their
		// underlying kind.
		return nil, newUnsupportedValueError(v, SpecDisplay)
	}
	rv := reflect.ValueOf(v)
	if d, ok := scalarOf(rv); ok {
		return d.(Displayer), nil
	}
	return nil, newUnsupportedValueError(v, SpecDisplay)
}

type dynList []Debugger

func (l dynList) Debug(f *Formatter) error {
	return f.DebugList(func(b *ListBuilder) {
		for _, v := range l {
			b.Entry(v)
		}
	})
}

type dynEntry struct {
	key, value Debugger
}

type dynMap []dynEntry

func (m dynMap) Debug(f *Formatter) error {
	return f.DebugMap(func(b *MapBuilder) {
		for _, e := range m {
			b.Entry(e.key, e.value)
		}
	})
}

func dynMapOf(rv reflect.Value) (Debugger, error) {
	keys := rv.MapKeys()
	for _, k := range keys {
		if _, ok := sortKind(k); !ok {
			return nil, newUnsupportedValueError(k.Interface(), SpecDebug)
		}
	}
	slices.SortFunc(keys, compareKeys)
	m := make(dynMap, len(keys))
	for i, k := range keys {
		kd, err := debuggerOf(k.Interface())
		if err != nil {
			return nil, err
		}
		vd, err := debuggerOf(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, err
		}
		m[i] = dynEntry{key: kd, value: vd}
	}
	return m, nil
}

// Key classes in the order mixed-type keys sort in.
const (
	keyBool = iota
	keyInt
	keyUint
	keyString
)

func sortKind(k reflect.Value) (int, bool) {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.Bool:
		return keyBool, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return keyInt, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return keyUint, true
	case reflect.String:
		return keyString, true
	}
	return 0, false
}

func compareKeys(a, b reflect.Value) int {
	for a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	for b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	ka, _ := sortKind(a)
	kb, _ := sortKind(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}
	var c int
	switch ka {
	case keyBool:
		c = cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	case keyInt:
		c = cmp.Compare(a.Int(), b.Int())
	case keyUint:
		c = cmp.Compare(a.Uint(), b.Uint())
	default:
		c = cmp.Compare(a.String(), b.String())
	}
	if c != 0 {
		return c
	}
	// Equal values of different types, such as int(1) and int8(1).
	return cmp.Compare(a.Type().String(), b.Type().String())
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
