package ufmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnmatchedBrace     = errors.New("unmatched right brace")
	ErrInvalidPlaceholder = errors.New("invalid placeholder")
	ErrArity              = errors.New("argument count mismatch")
	ErrMissingNamed       = errors.New("missing named argument")
	ErrDuplicateNamed     = errors.New("duplicate named argument")
	ErrUnusedNamed        = errors.New("unused named argument")
	ErrUnsupportedValue   = errors.New("unsupported value")
	ErrBuilderFinished    = errors.New("builder already finished")
	ErrBufferFull         = errors.New("buffer full")
	ErrInvalidConfig      = errors.New("invalid config")
)

// Spec is the rendering requested by a placeholder.
type Spec int

const (
	SpecDisplay     Spec = iota // {} or {name}
	SpecDebug                   // {:?} or {name:?}
	SpecDebugPretty             // {:#?} or {name:#?}
)

// specs is ordered so that the longer suffixes are tried first.
var specs = []struct {
	suffix string
	spec   Spec
}{
	{":#?}", SpecDebugPretty},
	{":?}", SpecDebug},
	{"}", SpecDisplay},
}

// String returns the placeholder form of the spec.
func (s Spec) String() string {
	switch s {
	case SpecDisplay:
		return "{}"
	case SpecDebug:
		return "{:?}"
	case SpecDebugPretty:
		return "{:#?}"
	default:
		return fmt.Sprintf("Spec(%d)", int(s))
	}
}

// ParseSpec parses the part of a placeholder that follows the optional
// name, e.g. "}" or ":#?}".
func ParseSpec(s string) (Spec, error) {
	for _, sp := range specs {
		if s == sp.suffix {
			return sp.spec, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlaceholder, s)
}

// cutSpec strips a spec suffix from the front of s.
func cutSpec(s string) (Spec, string, bool) {
	for _, sp := range specs {
		if rest, ok := strings.CutPrefix(s, sp.suffix); ok {
			return sp.spec, rest, true
		}
	}
	return 0, s, false
}

// --- Core capabilities ---

// Displayer renders a direct, user-facing text form. Required by {} and
// {name}.
type Displayer interface {
	Display(f *Formatter) error
}

// Debugger renders a structured, developer-facing form. Required by {:?},
// {:#?} and their named variants. Implementations compose the builders
// returned by [Formatter.DebugStruct] and friends, so pretty mode is
// handled for them.
type Debugger interface {
	Debug(f *Formatter) error
}

// NamedArg is a value bound to a {name} capture rather than consumed in
// order.
type NamedArg struct {
	Name  string
	Value any
}

// Named binds v to the captures called name.
func Named(name string, v any) NamedArg {
	return NamedArg{Name: name, Value: v}
}

// --- Package-level entry points ---

// DefaultCacheSize bounds the template cache of the default printer.
const DefaultCacheSize = 256

var std = New(WithCacheSize(DefaultCacheSize))

// Write renders tmpl with args into w using the default [Printer].
func Write(w Writer, tmpl string, args ...any) error {
	return std.Write(w, tmpl, args...)
}

// Writeln is like [Write] and appends a newline.
func Writeln(w Writer, tmpl string, args ...any) error {
	return std.Writeln(w, tmpl, args...)
}

// Fprint renders tmpl with args into an [io.Writer].
func Fprint(w io.Writer, tmpl string, args ...any) error {
	return std.Fprint(w, tmpl, args...)
}

// Sprint renders tmpl with args and returns the text.
func Sprint(tmpl string, args ...any) (string, error) {
	return std.Sprint(tmpl, args...)
}
