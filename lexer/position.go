package lexer

// Cursor tracks the human-readable position of the read head as characters
// are consumed. Line and Col are 0-based; diagnostics add 1 when rendering.
type Cursor struct {
	Line int
	Col  int

	prevCR bool
}

// Advance moves the cursor past chr. A CR starts a new line and arms the
// pending-CR flag so that an immediately following LF is absorbed instead of
// counting as a second terminator.
func (c *Cursor) Advance(chr rune) {
	switch chr {
	case '\r':
		c.Line++
		c.Col = 0
		c.prevCR = true
	case '\n':
		if c.prevCR {
			c.prevCR = false
		} else {
			c.Line++
			c.Col = 0
		}
	default:
		c.Col++
		c.prevCR = false
	}
}
