// Package ufmt renders values into text through a small, allocation-light
// formatting pipeline.
//
// Templates use a deliberately tiny placeholder language:
//
//   - {} renders the next argument's display form ([Displayer])
//   - {:?} renders its debug form ([Debugger])
//   - {:#?} renders the debug form in pretty, multi-line mode
//   - {name}, {name:?} and {name:#?} take the value passed as Named(name, v)
//   - {{ and }} are literal braces
//
// Anything else inside braces is rejected when the template is compiled, as
// is a mismatch between the placeholders and the supplied arguments. These
// errors are reported before the first byte is written:
//
//	err := ufmt.Write(w, "{} + {} = {:?}", ufmt.I32(1), ufmt.I32(2), ufmt.I32(3))
//
// # Destinations
//
// Output goes to a [Writer], a one-method interface. [IOWriter] adapts an
// [io.Writer], [Buffer] collects into memory with an optional size limit,
// and [WriterFunc] adapts a function. The first error returned by the
// Writer aborts rendering and is handed back unchanged.
//
// # Values
//
// Integers of every width render through the wrapper types [I8] to [I64],
// [U8] to [U64], [Int], [Uint], [U128] and [I128]. [Ptr] renders an
// address in hexadecimal. [Str], [Char] and [Bool] cover the remaining
// scalars. Builtin Go integers, strings and booleans are wrapped
// automatically; [Value] converts composite data such as decoded YAML.
//
// User types implement [Displayer] and [Debugger]. Debug forms are built
// with the structural builders so that pretty mode works without extra
// code:
//
//	func (p Point) Debug(f *ufmt.Formatter) error {
//		return f.DebugStruct("Point", func(s *ufmt.StructBuilder) {
//			s.Field("x", ufmt.I32(p.X)).Field("y", ufmt.I32(p.Y))
//		})
//	}
//
// renders as "Point { x: 1, y: 2 }" under {:?} and as
//
//	Point {
//	    x: 1,
//	    y: 2,
//	}
//
// under {:#?}.
//
// # Printers
//
// The package-level functions use a default [Printer]. [New] builds one
// with its own indent, logger and template cache; [LoadConfig] reads the
// same settings from YAML.
package ufmt
