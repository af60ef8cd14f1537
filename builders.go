package ufmt

import "iter"

// shape holds the delimiters of one builder kind.
type shape struct {
	open        string // before the first entry
	openPretty  string
	close       string // after the last entry
	closePretty string
	empty       string // whole output of a builder without entries
}

var (
	structShape = shape{open: " { ", openPretty: " {\n", close: " }", closePretty: "}"}
	tupleShape  = shape{open: "(", openPretty: "(\n", close: ")", closePretty: ")"}
	listShape   = shape{open: "[", openPretty: "[\n", close: "]", closePretty: "]", empty: "[]"}
	setShape    = shape{open: "{", openPretty: "{\n", close: "}", closePretty: "}", empty: "{}"}
)

// builder places separators and indentation for every builder kind. The
// first error sticks: later entries and the closer are skipped and finish
// returns it.
type builder struct {
	f      *Formatter
	shape  *shape
	pretty bool
	fields int
	done   bool
	err    error
}

func newBuilder(f *Formatter, s *shape) builder {
	return builder{f: f, shape: s, pretty: f.pretty}
}

func (b *builder) entry(write func(f *Formatter) error) {
	if b.err != nil {
		return
	}
	if b.done {
		b.err = ErrBuilderFinished
		return
	}
	b.err = b.writeEntry(write)
}

func (b *builder) writeEntry(write func(f *Formatter) error) error {
	f := b.f
	switch {
	case b.fields == 0 && b.pretty:
		if err := f.WriteStr(b.shape.openPretty); err != nil {
			return err
		}
		f.depth++
	case b.fields == 0:
		if err := f.WriteStr(b.shape.open); err != nil {
			return err
		}
	case !b.pretty:
		if err := f.WriteStr(", "); err != nil {
			return err
		}
	}
	b.fields++
	if b.pretty {
		if err := f.writeIndent(); err != nil {
			return err
		}
	}
	if err := write(f); err != nil {
		return err
	}
	if b.pretty {
		return f.WriteStr(",\n")
	}
	return nil
}

func (b *builder) finish() error {
	if b.done {
		return ErrBuilderFinished
	}
	b.done = true
	if b.err != nil {
		if b.pretty && b.fields > 0 {
			b.f.depth--
		}
		return b.err
	}
	f := b.f
	switch {
	case b.fields == 0:
		if b.shape.empty == "" {
			return nil
		}
		return f.WriteStr(b.shape.empty)
	case b.pretty:
		f.depth--
		if err := f.writeIndent(); err != nil {
			return err
		}
		return f.WriteStr(b.shape.closePretty)
	default:
		return f.WriteStr(b.shape.close)
	}
}

// StructBuilder renders a record: Name { a: 1, b: 2 }.
type StructBuilder struct {
	b builder
}

// Field renders one named field.
func (s *StructBuilder) Field(name string, v Debugger) *StructBuilder {
	s.b.entry(func(f *Formatter) error {
		if err := f.WriteStr(name); err != nil {
			return err
		}
		if err := f.WriteStr(": "); err != nil {
			return err
		}
		return v.Debug(f)
	})
	return s
}

// Err returns the first error seen by the builder.
func (s *StructBuilder) Err() error { return s.b.err }

// TupleBuilder renders a tuple record: Name(1, 2).
type TupleBuilder struct {
	b builder
}

// Field renders one positional field.
func (t *TupleBuilder) Field(v Debugger) *TupleBuilder {
	t.b.entry(v.Debug)
	return t
}

// Err returns the first error seen by the builder.
func (t *TupleBuilder) Err() error { return t.b.err }

// ListBuilder renders a sequence: [1, 2].
type ListBuilder struct {
	b builder
}

// Entry renders one element.
func (l *ListBuilder) Entry(v Debugger) *ListBuilder {
	l.b.entry(v.Debug)
	return l
}

// Entries renders every element of seq, stopping at the first error.
func (l *ListBuilder) Entries(seq iter.Seq[Debugger]) *ListBuilder {
	for v := range seq {
		if l.Entry(v).b.err != nil {
			break
		}
	}
	return l
}

// Err returns the first error seen by the builder.
func (l *ListBuilder) Err() error { return l.b.err }

// SetBuilder renders a set: {1, 2}.
type SetBuilder struct {
	b builder
}

// Entry renders one element.
func (s *SetBuilder) Entry(v Debugger) *SetBuilder {
	s.b.entry(v.Debug)
	return s
}

// Entries renders every element of seq, stopping at the first error.
func (s *SetBuilder) Entries(seq iter.Seq[Debugger]) *SetBuilder {
	for v := range seq {
		if s.Entry(v).b.err != nil {
			break
		}
	}
	return s
}

// Err returns the first error seen by the builder.
func (s *SetBuilder) Err() error { return s.b.err }

// MapBuilder renders a mapping: {k: v, k2: v2}.
type MapBuilder struct {
	b builder
}

// Entry renders one key-value pair.
func (m *MapBuilder) Entry(k, v Debugger) *MapBuilder {
	m.b.entry(func(f *Formatter) error {
		if err := k.Debug(f); err != nil {
			return err
		}
		if err := f.WriteStr(": "); err != nil {
			return err
		}
		return v.Debug(f)
	})
	return m
}

// Entries renders every pair of seq, stopping at the first error.
func (m *MapBuilder) Entries(seq iter.Seq2[Debugger, Debugger]) *MapBuilder {
	for k, v := range seq {
		if m.Entry(k, v).b.err != nil {
			break
		}
	}
	return m
}

// Err returns the first error seen by the builder.
func (m *MapBuilder) Err() error { return m.b.err }

// DebugStruct renders a record called name. fields adds the fields; the
// closing delimiter is written once fields returns. A record without fields
// renders as its bare name.
//
//	return f.DebugStruct("Point", func(s *ufmt.StructBuilder) {
//		s.Field("x", ufmt.I32(p.X)).Field("y", ufmt.I32(p.Y))
//	})
func (f *Formatter) DebugStruct(name string, fields func(*StructBuilder)) error {
	s := &StructBuilder{b: newBuilder(f, &structShape)}
	if err := f.WriteStr(name); err != nil {
		return err
	}
	fields(s)
	return s.b.finish()
}

// DebugTuple renders a tuple record called name. Without fields it renders
// as the bare name.
func (f *Formatter) DebugTuple(name string, fields func(*TupleBuilder)) error {
	t := &TupleBuilder{b: newBuilder(f, &tupleShape)}
	if err := f.WriteStr(name); err != nil {
		return err
	}
	fields(t)
	return t.b.finish()
}

// DebugList renders a sequence.
func (f *Formatter) DebugList(entries func(*ListBuilder)) error {
	l := &ListBuilder{b: newBuilder(f, &listShape)}
	entries(l)
	return l.b.finish()
}

// DebugSet renders a set.
func (f *Formatter) DebugSet(entries func(*SetBuilder)) error {
	s := &SetBuilder{b: newBuilder(f, &setShape)}
	entries(s)
	return s.b.finish()
}

// DebugMap renders a mapping.
func (f *Formatter) DebugMap(entries func(*MapBuilder)) error {
	m := &MapBuilder{b: newBuilder(f, &setShape)}
	entries(m)
	return m.b.finish()
}
