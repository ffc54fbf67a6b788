package lex

// Cursor tracks a mutable position over a fully materialized input buffer.
// The buffer is kept whole because rule patterns need arbitrary look-ahead
// past the current position.
type Cursor struct {
	buf string
	loc Location
}

// NewCursor returns a cursor positioned at the start of buf. name labels the
// source in locations and error messages and may be empty.
func NewCursor(name, buf string) *Cursor {
	return &Cursor{buf: buf, loc: Location{Name: name, Line: 1, Col: 1}}
}

// Loc returns the current location.
func (c *Cursor) Loc() Location {
	return c.loc
}

// Buffer returns the underlying input buffer.
func (c *Cursor) Buffer() string {
	return c.buf
}

// Peek returns the byte k positions ahead of the cursor without consuming
// it. k is 1-based: Peek(1) is the byte the next scan starts at. Past the
// end of input Peek returns 0.
func (c *Cursor) Peek(k int) byte {
	i := c.loc.Offset + k - 1
	if i < 0 || i >= len(c.buf) {
		return 0
	}
	return c.buf[i]
}

// Advance consumes n bytes, updating offset, line, and column. A newline
// byte bumps the line and resets the column to 1. Advancing past the end of
// the buffer stops at the end.
func (c *Cursor) Advance(n int) {
	for i := 0; i < n && c.loc.Offset < len(c.buf); i++ {
		if c.buf[c.loc.Offset] == '\n' {
			c.loc.Line++
			c.loc.Col = 1
		} else {
			c.loc.Col++
		}
		c.loc.Offset++
	}
}

// SeekTo moves the cursor to loc. The location must have been derived from
// the same buffer.
func (c *Cursor) SeekTo(loc Location) {
	c.loc = loc
}

// AtEnd reports whether the whole buffer has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.loc.Offset >= len(c.buf)
}

// advance returns the location n bytes past loc in buf, tracking embedded
// newlines.
func advance(loc Location, buf string, n int) Location {
	c := Cursor{buf: buf, loc: loc}
	c.Advance(n)
	return c.loc
}
