// Package bytebuf provides a fixed-capacity byte buffer with explicit
// begin/end/decode offsets.
//
// The buffer never grows: its capacity is fixed at construction, which makes
// it a suitable destination for bounded encoders. The used area lies between
// the begin and end offsets; within it, a decode offset tracks how far a
// consumer has read. The free area runs from the end offset to capacity, and
// the rest area from the decode offset to the end offset.
package bytebuf

import (
	"io"

	"github.com/treemark/treemark/pkg/errors"
)

// Buffer is a fixed-capacity byte buffer.
//
// The zero value has zero capacity and rejects all writes; use New.
// Buffer is not safe for concurrent use.
type Buffer struct {
	buf  []byte
	ofsB int // begin of the used area
	ofsE int // end of the used area
	ofsD int // decode position inside the used area
}

// New allocates a buffer with the given capacity in bytes.
// All offsets start at the very first byte.
// Returns an INVALID_PARAMETER error for a non-positive size.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "invalid buffer size %d", size)
	}
	return &Buffer{buf: make([]byte, size)}, nil
}

// Reset moves all offsets back to the first byte, discarding the used area.
// The underlying storage is retained.
func (b *Buffer) Reset() {
	b.ofsB, b.ofsE, b.ofsD = 0, 0, 0
}

// Cap returns the buffer capacity in bytes.
func (b *Buffer) Cap() int { return len(b.buf) }

// IsEmpty reports whether the used area is empty.
func (b *Buffer) IsEmpty() bool { return b.ofsB == b.ofsE }

// IsFull reports whether the free area is exhausted.
func (b *Buffer) IsFull() bool { return b.ofsE == len(b.buf) }

// Used returns the number of bytes in the used area.
func (b *Buffer) Used() int { return b.ofsE - b.ofsB }

// Free returns the number of bytes available for writing.
func (b *Buffer) Free() int { return len(b.buf) - b.ofsE }

// Rest returns the number of used bytes not yet consumed by Next.
func (b *Buffer) Rest() int { return b.ofsE - b.ofsD }

// Bytes returns the used area. The slice aliases the buffer's storage and is
// only valid until the next mutating call.
func (b *Buffer) Bytes() []byte { return b.buf[b.ofsB:b.ofsE] }

// Write appends p to the used area. If p exceeds the free area, Write copies
// what fits and returns io.ErrShortWrite along with the number of bytes
// copied; the buffer never overflows.
func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.ofsE:], p)
	b.ofsE += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// WriteString appends s to the used area with the same truncation contract
// as Write.
func (b *Buffer) WriteString(s string) (int, error) {
	n := copy(b.buf[b.ofsE:], s)
	b.ofsE += n
	if n < len(s) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Next consumes up to n bytes from the rest area, advancing the decode
// offset, and returns them. Fewer bytes are returned when the rest area is
// smaller than n. The slice aliases the buffer's storage.
func (b *Buffer) Next(n int) []byte {
	if rest := b.Rest(); n > rest {
		n = rest
	}
	p := b.buf[b.ofsD : b.ofsD+n]
	b.ofsD += n
	return p
}

// Discard drops up to n consumed bytes from the front of the used area by
// advancing the begin offset. The begin offset never moves past the decode
// offset.
func (b *Buffer) Discard(n int) {
	if consumed := b.ofsD - b.ofsB; n > consumed {
		n = consumed
	}
	b.ofsB += n
}

var _ io.Writer = (*Buffer)(nil)
