package ufmt

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PieceKind tells literal text from argument placeholders.
type PieceKind int

const (
	PieceLiteral PieceKind = iota
	PieceArg
)

// Piece is one unit of a compiled template.
type Piece struct {
	Kind PieceKind
	// Text is the unescaped literal text. Empty for arguments.
	Text string
	// Spec is the requested rendering. Only meaningful for arguments.
	Spec Spec
	// Name is the capture name, or empty for a positional argument.
	Name string
	// Offset is the byte offset of the piece in the template source.
	Offset int
}

// IsPositional reports whether p consumes the next positional argument.
func (p Piece) IsPositional() bool { return p.Kind == PieceArg && p.Name == "" }

// Template is a compiled format string. It is immutable and safe for
// concurrent use.
type Template struct {
	src        string
	pieces     []Piece
	positional int
	names      []string
}

// Compile parses src into pieces. The accepted placeholders are {}, {:?},
// {:#?}, their named variants {name}, {name:?}, {name:#?}, and the escapes
// {{ and }}.
func Compile(src string) (*Template, error) {
	c := compiler{src: src, litStart: -1}
	if err := c.run(); err != nil {
		return nil, err
	}
	t := &Template{src: src, pieces: c.pieces}
	for _, p := range c.pieces {
		switch {
		case p.IsPositional():
			t.positional++
		case p.Kind == PieceArg && !slices.Contains(t.names, p.Name):
			t.names = append(t.names, p.Name)
		}
	}
	return t, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Template {
	t, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the template text.
func (t *Template) Source() string { return t.src }

// Pieces returns a copy of the compiled pieces.
func (t *Template) Pieces() []Piece { return slices.Clone(t.pieces) }

// Positional returns the number of positional arguments the template
// consumes.
func (t *Template) Positional() int { return t.positional }

// Names returns the distinct capture names in order of first use.
func (t *Template) Names() []string { return slices.Clone(t.names) }

// CheckArity reports an [ErrArity] error unless exactly Positional()
// positional arguments are supplied.
func (t *Template) CheckArity(supplied int) error {
	switch {
	case supplied < t.positional:
		return newTooFewArgsError(t.src, t.positional, supplied)
	case supplied > t.positional:
		return newUnusedArgError(t.src, t.positional, supplied)
	default:
		return nil
	}
}

type compiler struct {
	src      string
	pieces   []Piece
	lit      strings.Builder
	litStart int
}

func (c *compiler) run() error {
	pos := 0
	for {
		open := strings.IndexByte(c.src[pos:], '{')
		if open < 0 {
			break
		}
		if err := c.literal(pos, pos+open); err != nil {
			return err
		}
		pos += open
		tail := c.src[pos+1:]

		if strings.HasPrefix(tail, "{") {
			c.mark(pos)
			c.lit.WriteByte('{')
			pos += 2
			continue
		}

		name, rest := cutIdent(tail)
		spec, rest, ok := cutSpec(rest)
		if !ok {
			return newInvalidPlaceholderError(c.src, pos)
		}
		c.flush()
		c.pieces = append(c.pieces, Piece{Kind: PieceArg, Spec: spec, Name: name, Offset: pos})
		pos = len(c.src) - len(rest)
	}
	if err := c.literal(pos, len(c.src)); err != nil {
		return err
	}
	c.flush()
	return nil
}

// literal appends src[from:to] to the pending literal, turning }} into }.
func (c *compiler) literal(from, to int) error {
	if from == to {
		return nil
	}
	c.mark(from)
	s := c.src[from:to]
	for {
		i := strings.IndexByte(s, '}')
		if i < 0 {
			c.lit.WriteString(s)
			return nil
		}
		if !strings.HasPrefix(s[i+1:], "}") {
			return newUnmatchedBraceError(c.src, to-len(s)+i)
		}
		c.lit.WriteString(s[:i+1])
		s = s[i+2:]
	}
}

func (c *compiler) mark(pos int) {
	if c.litStart < 0 {
		c.litStart = pos
	}
}

func (c *compiler) flush() {
	if c.litStart < 0 {
		return
	}
	c.pieces = append(c.pieces, Piece{Kind: PieceLiteral, Text: c.lit.String(), Offset: c.litStart})
	c.lit.Reset()
	c.litStart = -1
}

// cutIdent splits a leading capture name off s. A name is a run of letters
// and digits that does not start with a digit and is followed by something
// other than a letter or digit.
func cutIdent(s string) (name, rest string) {
	end := strings.IndexFunc(s, func(r rune) bool { return !isIdentRune(r) })
	if end <= 0 {
		return "", s
	}
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsNumber(r) {
		return "", s
	}
	return s[:end], s[end:]
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}
