package ufmt

import (
	"io"
)

// Writer is a destination for rendered text.
//
// WriteStr either writes all of s or returns an error. Errors are handed
// back to the caller of the render unchanged.
type Writer interface {
	WriteStr(s string) error
}

// CharWriter is implemented by destinations that accept single characters
// more cheaply than one-rune strings. Optional.
type CharWriter interface {
	WriteChar(r rune) error
}

// WriterFunc adapts a function to [Writer].
type WriterFunc func(s string) error

// WriteStr calls fn(s).
func (fn WriterFunc) WriteStr(s string) error { return fn(s) }

// IOWriter adapts an [io.Writer]. A short write is reported by w itself,
// as the io.Writer contract requires.
func IOWriter(w io.Writer) Writer {
	if sw, ok := w.(Writer); ok {
		return sw
	}
	return ioWriter{w: w}
}

type ioWriter struct {
	w io.Writer
}

func (w ioWriter) WriteStr(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// Buffer is an in-memory destination. The zero value is an empty buffer
// without a size limit.
type Buffer struct {
	b     []byte
	limit int
}

// NewBuffer returns a Buffer that refuses writes which would grow it past
// limit bytes. A limit of zero means unlimited.
func NewBuffer(limit int) *Buffer {
	return &Buffer{limit: limit}
}

// WriteStr appends s, or returns [ErrBufferFull] without writing anything
// if s does not fit.
func (b *Buffer) WriteStr(s string) error {
	if b.limit > 0 && len(b.b)+len(s) > b.limit {
		return ErrBufferFull
	}
	b.b = append(b.b, s...)
	return nil
}

// String returns the buffered text.
func (b *Buffer) String() string { return string(b.b) }

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return len(b.b) }

// Reset empties the buffer but keeps its storage and limit.
func (b *Buffer) Reset() { b.b = b.b[:0] }
