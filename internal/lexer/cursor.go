package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"ember/internal/source"
)

// Cursor walks the bytes of one file while tracking line and column.
type Cursor struct {
	file  *source.File
	off   uint32
	line  uint32 // 1-based
	col   uint32 // 1-based
	limit uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{file: f, off: 0, line: 1, col: 1, limit: limit}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// Peek2 reads the current and next byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= c.limit {
		return 0, 0, false
	}
	return c.file.Content[c.off], c.file.Content[c.off+1], true
}

// PeekAt reads the byte n positions ahead, or 0 when out of range.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.file.Content[c.off+n]
}

// Bump consumes one byte and returns it, maintaining line/col.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.file.Content[c.off] == b {
		c.Bump()
		return true
	}
	return false
}

// Point returns the current location as a source point.
func (c *Cursor) Point() source.Point {
	return source.Point{Offset: c.off, Line: c.line, Col: c.col}
}

// PosFrom returns the position covering mark..current.
func (c *Cursor) PosFrom(mark source.Point) source.Position {
	return source.NewPosition(mark, c.Point())
}

// Text returns the raw source bytes of the position as a string.
func (c *Cursor) Text(pos source.Position) string {
	return string(c.file.Content[pos.Start.Offset:pos.End.Offset])
}
