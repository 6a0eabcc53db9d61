package mergejoin

// Cursor is a forward-only positional reader over one pre-sorted stream.
// It owns its position; no backward movement, no random access, O(1) state.
type Cursor struct {
	kind Kind
	recs []Record
	pos  int
}

// NewCursor positions a cursor at the start of recs
func NewCursor(kind Kind, recs []Record) *Cursor {
	return &Cursor{kind: kind, recs: recs}
}

// Kind returns the stream kind this cursor reads
func (c *Cursor) Kind() Kind { return c.kind }

// Exhausted reports whether the cursor has moved past the last record
func (c *Cursor) Exhausted() bool { return c.pos >= len(c.recs) }

// Peek returns the date key at the current position, or the past-the-end
// marker when the stream is exhausted. Side-effect free.
func (c *Cursor) Peek() PeekKey {
	if c.Exhausted() {
		return PeekKey{End: true}
	}
	return PeekKey{Date: c.recs[c.pos].Date}
}

// Current returns the record at the current position.
// Calling it on an exhausted cursor is a programming error, not a data error.
func (c *Cursor) Current() Record {
	if c.Exhausted() {
		panic("mergejoin: Current on exhausted " + c.kind.String() + " cursor")
	}
	return c.recs[c.pos]
}

// Advance moves the cursor one position forward.
// Advancing past exhaustion is a programming error, not a data error.
func (c *Cursor) Advance() {
	if c.Exhausted() {
		panic("mergejoin: Advance past exhausted " + c.kind.String() + " cursor")
	}
	c.pos++
}
