package ufmt

import (
	"strings"
	"unicode/utf8"
)

// DefaultIndent is the number of spaces per nesting level in pretty mode.
const DefaultIndent = 4

// Formatter wraps one [Writer] for the duration of a single render call.
// It carries the pretty flag and the current nesting depth, and is passed
// by pointer through the whole recursive rendering. A Formatter must not be
// shared between concurrent renders.
type Formatter struct {
	w      Writer
	p      *Printer
	indent string
	pretty bool
	depth  int
}

// NewFormatter returns a Formatter writing to w with the default indent.
func NewFormatter(w Writer) *Formatter {
	return std.formatter(w)
}

// WriteStr writes s to the destination.
func (f *Formatter) WriteStr(s string) error {
	return f.w.WriteStr(s)
}

// WriteChar writes the UTF-8 encoding of r.
func (f *Formatter) WriteChar(r rune) error {
	if cw, ok := f.w.(CharWriter); ok {
		return cw.WriteChar(r)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return f.w.WriteStr(string(buf[:n]))
}

// IsPretty reports whether pretty mode is on.
func (f *Formatter) IsPretty() bool { return f.pretty }

// Pretty runs fn with pretty mode forced on and restores the previous mode
// afterwards.
func (f *Formatter) Pretty(fn func(*Formatter) error) error {
	prev := f.pretty
	f.pretty = true
	defer func() { f.pretty = prev }()
	return fn(f)
}

// Display renders v's display form.
func (f *Formatter) Display(v Displayer) error { return v.Display(f) }

// Debug renders v's debug form.
func (f *Formatter) Debug(v Debugger) error { return v.Debug(f) }

// Write renders a nested template into this formatter. Display and Debug
// implementations use it to compose their output from other values.
func (f *Formatter) Write(tmpl string, args ...any) error {
	t, bound, err := f.p.prepare(tmpl, args)
	if err != nil {
		return err
	}
	return render(f, t, bound)
}

// Writeln is like Write and appends a newline.
func (f *Formatter) Writeln(tmpl string, args ...any) error {
	if err := f.Write(tmpl, args...); err != nil {
		return err
	}
	return f.w.WriteStr("\n")
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	for range f.depth {
		if err := f.w.WriteStr(f.indent); err != nil {
			return err
		}
	}
	return nil
}

func indentUnit(n int) string {
	if n == DefaultIndent {
		return "    "
	}
	return strings.Repeat(" ", n)
}
